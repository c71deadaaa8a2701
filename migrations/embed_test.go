package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestMigrationsEmbedded(t *testing.T) {
	src, err := iofs.New(FS, ".")
	if err != nil {
		t.Fatalf("open embedded source: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil {
		t.Fatalf("first migration: %v", err)
	}
	if first != 1 {
		t.Fatalf("expected first version 1, got %d", first)
	}

	up, _, err := src.ReadUp(first)
	if err != nil {
		t.Fatalf("read up: %v", err)
	}
	up.Close()
	down, _, err := src.ReadDown(first)
	if err != nil {
		t.Fatalf("read down: %v", err)
	}
	down.Close()
}

func TestInitCreatesEveryTable(t *testing.T) {
	up, err := fs.ReadFile(FS, "000001_init.up.sql")
	if err != nil {
		t.Fatalf("read up migration: %v", err)
	}
	down, err := fs.ReadFile(FS, "000001_init.down.sql")
	if err != nil {
		t.Fatalf("read down migration: %v", err)
	}

	tables := []string{
		"account_statuses", "room_statuses", "player_statuses", "images", "actions",
		"accounts", "refresh_tokens", "roles", "game_settings", "game_setting_roles",
		"rooms", "game_events", "players", "chats", "replies", "player_action_overrides",
		"player_trigger_events", "player_influence_events", "event_influence_players",
		"role_actions", "system_logs",
	}
	for _, table := range tables {
		if !strings.Contains(string(up), "CREATE TABLE "+table+" (") {
			t.Fatalf("up migration does not create %s", table)
		}
		if !strings.Contains(string(down), "DROP TABLE IF EXISTS "+table+";") {
			t.Fatalf("down migration does not drop %s", table)
		}
	}
}
