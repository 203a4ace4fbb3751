// Package config reads settings from the environment (optionally seeded from a
// .env file) and lets command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port         string
	BackendPort  string
	JWTSecret    string
	AdminAPIKey  string
	DatabaseURL  string
	DBDriver     string
	SQLitePath   string
	CatalogPath  string
	OrdersDBPath string
	// BackendDBPath is the JSON file served by the mock account backend.
	BackendDBPath string
	BackendURL    string
	SaveDebounce  time.Duration
	// SessionIdle is how long an untouched session stays cached in memory.
	SessionIdle time.Duration
	Debug       bool
}

// Load reads .env if present and parses args over the resulting environment.
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse(name, args, os.Getenv)
}

// Parse builds a Config from getenv and then applies flags from args.
func Parse(name string, args []string, getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	debounce := 250 * time.Millisecond
	if v := env("SAVE_DEBOUNCE", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SAVE_DEBOUNCE: %w", err)
		}
		debounce = d
	}
	idle := 30 * time.Minute
	if v := env("SESSION_IDLE", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SESSION_IDLE: %w", err)
		}
		idle = d
	}

	cfg := Config{}
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&cfg.Port, "port", env("PORT", "8080"), "storefront listen port")
	flags.StringVar(&cfg.BackendPort, "backend-port", env("BACKEND_PORT", "3001"), "mock backend listen port")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", env("JWT_SECRET", ""), "HMAC secret for session and access tokens")
	flags.StringVar(&cfg.AdminAPIKey, "admin-api-key", env("ADMIN_API_KEY", ""), "X-API-KEY value for /admin routes (empty disables them)")
	flags.StringVar(&cfg.DatabaseURL, "database-url", env("DATABASE_URL", ""), "postgres DSN for session state")
	flags.StringVar(&cfg.DBDriver, "db-driver", env("DB_DRIVER", ""), "postgres or sqlite (default: postgres when --database-url is set)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", env("SQLITE_PATH", "data/state.db"), "sqlite file for session state")
	flags.StringVar(&cfg.CatalogPath, "catalog", env("CATALOG_PATH", ""), "YAML catalog of promo codes, shipping options and tax rates")
	flags.StringVar(&cfg.OrdersDBPath, "orders-db", env("ORDERS_DB_PATH", "data/orders.json"), "JSON file that records placed orders")
	flags.StringVar(&cfg.BackendDBPath, "backend-db", env("BACKEND_DB_PATH", "data/db.json"), "JSON file served by the mock backend")
	flags.StringVar(&cfg.BackendURL, "backend-url", env("BACKEND_URL", ""), "base URL of the account backend")
	flags.DurationVar(&cfg.SaveDebounce, "save-debounce", debounce, "quiet period before session state is written")
	flags.DurationVar(&cfg.SessionIdle, "session-idle", idle, "idle time before a cached session is evicted from memory")
	flags.BoolVar(&cfg.Debug, "debug", env("DEBUG", "") == "true", "development logging and gin debug mode")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
		if cfg.DatabaseURL != "" {
			cfg.DBDriver = DriverPostgres
		}
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("postgres driver needs a database url")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown db driver %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SaveDebounce < 0 {
		return errors.New("save debounce must not be negative")
	}
	if c.SessionIdle < time.Second {
		return errors.New("session idle must be at least 1s")
	}
	return nil
}
