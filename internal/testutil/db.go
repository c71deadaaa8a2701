// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/database"
	"gorm.io/gorm"
)

// NewDB returns a migrated, seeded SQLite database in t's temp dir.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
	conn, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(conn)
	})

	if err := database.Migrate(conn); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := database.SeedStatuses(conn); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return conn
}
