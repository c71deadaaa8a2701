package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured database and stores it in DB.
func Connect(cfg *config.Config) error {
	conn, err := Open(cfg)
	if err != nil {
		return err
	}
	DB = conn
	slog.Info("database connected", "driver", cfg.DBDriver)
	return nil
}

// Open returns a pooled connection for cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// one writer; sqlite serializes writes anyway and this avoids SQLITE_BUSY inside transactions
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}
	return conn, nil
}

// newGormLogger reports slow queries and failed statements at Warn, below the
// level persisted to system_logs. Lookup misses are answered as 404s and not
// logged.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// SQLiteDSN enables foreign keys so ON DELETE rules apply.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate runs AutoMigrate for every model.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db connection is nil")
	}
	if err := conn.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Ping(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the pool behind conn.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
