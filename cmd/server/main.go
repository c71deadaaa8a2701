package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(logging.LevelFor(cfg.AppEnv))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}
	if cfg.DBSeed {
		if err := database.SeedStatuses(database.DB); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// ERROR+ records also go to system_logs
	dbLogHandler := logging.NewDBHandler(database.DB)
	logging.Setup(logging.LevelFor(cfg.AppEnv), dbLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, database.DB, server.Options{RequestLog: true})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "driver", cfg.DBDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(database.DB); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
