package config

import (
	"errors"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBAutoMigrate  bool
	DBSeed         bool
	DBMaxOpenConns int
	DBMaxIdleConns int

	// MigrationsURL is the golang-migrate database URL used by cmd/migrate.
	MigrationsURL string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Admin
	AdminToken string

	// Server
	Port        string
	CORSOrigins string

	// Observability
	LogRetentionDays int
	SentryDSN        string
	AppEnv           string
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "mafia_db"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBPath:         getEnv("DB_PATH", "mafia.db"),
		DBAutoMigrate:  parseBool(getEnv("DB_AUTO_MIGRATE", "true"), true),
		DBSeed:         parseBool(getEnv("DB_SEED", "true"), true),
		DBMaxOpenConns: parseInt(getEnv("DB_MAX_OPEN_CONNS", "50"), 50),
		DBMaxIdleConns: parseInt(getEnv("DB_MAX_IDLE_CONNS", "25"), 25),

		MigrationsURL: getEnv("MIGRATIONS_DATABASE_URL", ""),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		AppEnv:           getEnv("APP_ENV", "development"),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("DB_PATH environment variable is required")
		}
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// MigrationURL returns the URL form of the postgres DSN unless one is configured.
func (c *Config) MigrationURL() string {
	if c.MigrationsURL != "" {
		return c.MigrationsURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
