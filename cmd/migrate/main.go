package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func main() {
	create := flag.String("create", "", "scaffold a new migration pair with this name")
	dir := flag.String("dir", "migrations", "directory new migrations are written to")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [up|down|version]")
		fmt.Fprintln(os.Stderr, "       migrate -create name [-dir migrations]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *create != "" {
		if err := scaffold(*dir, *create); err != nil {
			log.Fatalf("create migration: %v", err)
		}
		return
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalf("open embedded migrations: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrationURL())
	if err != nil {
		log.Fatalf("migration setup failed: %v", err)
	}
	defer m.Close()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}
	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("database migration failed: %v", err)
		}
		log.Println("database migrations applied")
	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("rolled back one migration")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("no migrations applied")
			return
		}
		if err != nil {
			log.Fatalf("read version: %v", err)
		}
		log.Printf("version %d (dirty=%t)", version, dirty)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// scaffold writes an empty timestamped up/down pair into dir.
func scaffold(dir, name string) error {
	if strings.ContainsAny(name, " /") {
		return errors.New("migration name must not contain spaces or slashes")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	base := time.Now().UTC().Format("20060102150405") + "_" + name
	upPath := filepath.Join(dir, base+".up.sql")
	downPath := filepath.Join(dir, base+".down.sql")
	if err := writeNew(upPath, "-- up migration\n"); err != nil {
		return err
	}
	if err := writeNew(downPath, "-- down migration\n"); err != nil {
		return err
	}
	log.Printf("created %s and %s", upPath, downPath)
	return nil
}

func writeNew(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
