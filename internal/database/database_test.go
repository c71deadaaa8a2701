package database_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/testutil"
)

func TestMigrateIsIdempotent(t *testing.T) {
	conn := testutil.NewDB(t)

	if err := database.Migrate(conn); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	for _, m := range models.All() {
		if !conn.Migrator().HasTable(m) {
			t.Fatalf("missing table for %T", m)
		}
	}
}

func TestSeedStatusesIsIdempotent(t *testing.T) {
	conn := testutil.NewDB(t)

	if err := database.SeedStatuses(conn); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	counts := map[string]interface{}{
		"account": &models.AccountStatus{},
		"room":    &models.RoomStatus{},
		"player":  &models.PlayerStatus{},
	}
	for name, model := range counts {
		var n int64
		if err := conn.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s statuses: %v", name, err)
		}
		if n != 3 {
			t.Fatalf("expected 3 %s statuses, got %d", name, n)
		}
	}

	var active models.AccountStatus
	if err := conn.Where("tag = ?", models.AccountStatusActive).First(&active).Error; err != nil {
		t.Fatalf("active status missing: %v", err)
	}
}

func TestPing(t *testing.T) {
	conn := testutil.NewDB(t)
	if err := database.Ping(conn); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	conn := testutil.NewDB(t)

	var enabled int
	if err := conn.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign keys on, got %d", enabled)
	}
}
