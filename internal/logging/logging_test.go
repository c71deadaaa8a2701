package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/testutil"
)

func TestDBHandlerStoresErrorsOnly(t *testing.T) {
	db := testutil.NewDB(t)
	h := logging.NewDBHandler(db)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("room lookup failed",
		"account_id", "acc-1",
		"room_id", "room-1",
		"latency_ms", 12,
		"error", "boom",
		"code", "ABC123",
	)
	h.Stop()

	var rows []models.SystemLog
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("read logs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one stored record, got %d", len(rows))
	}
	got := rows[0]
	if got.Message != "room lookup failed" || got.RequestID != "req-1" || got.Error != "boom" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.AccountID == nil || *got.AccountID != "acc-1" || got.RoomID == nil || *got.RoomID != "room-1" {
		t.Fatalf("expected account and room columns, got %+v", got)
	}
	if got.LatencyMs != 12 {
		t.Fatalf("expected latency 12, got %d", got.LatencyMs)
	}
	if !strings.Contains(string(got.Extra), "ABC123") {
		t.Fatalf("expected unknown attrs in extra, got %s", got.Extra)
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var info, errs bytes.Buffer
	h := logging.NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h)

	logger.Info("player joined")
	logger.Error("chat rejected")

	if !strings.Contains(info.String(), "player joined") || !strings.Contains(info.String(), "chat rejected") {
		t.Fatalf("info handler missed records: %s", info.String())
	}
	if strings.Contains(errs.String(), "player joined") || !strings.Contains(errs.String(), "chat rejected") {
		t.Fatalf("error handler got wrong records: %s", errs.String())
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should not be enabled")
	}
}

func TestDeleteOlderThan(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now()
	logs := []models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now, Level: "ERROR", Message: "fresh"},
	}
	if err := db.Create(&logs).Error; err != nil {
		t.Fatalf("seed logs: %v", err)
	}

	deleted, err := logging.DeleteOlderThan(db, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}
}

func TestLevelFor(t *testing.T) {
	if logging.LevelFor("development") != slog.LevelDebug {
		t.Fatal("development should log debug")
	}
	if logging.LevelFor("production") != slog.LevelInfo {
		t.Fatal("production should log info")
	}
}
