// Package config builds the explicit startup configuration from the
// environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm/logger"

	"blogly/internal/database"
	"blogly/internal/utils"
)

type Config struct {
	Addr            string
	DatabaseURL     string
	DBEcho          bool
	DBMaxConns      int
	Debug           bool
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            ":8080",
		DatabaseURL:     database.GetDefaultDBPath(),
		DBMaxConns:      10,
		ShutdownTimeout: 10 * time.Second,
	}

	if v := strings.TrimSpace(getenv("ADDR")); v != "" {
		cfg.Addr = v
	} else if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}

	var err error
	if cfg.DBEcho, err = parseBool(getenv, "DB_ECHO", cfg.DBEcho); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = parseBool(getenv, "DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(getenv("DB_MAX_CONNS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("DB_MAX_CONNS must be a positive integer, got %q", v)
		}
		cfg.DBMaxConns = n
	}
	if v := strings.TrimSpace(getenv("SHUTDOWN_TIMEOUT_SECONDS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		cfg.ShutdownTimeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}

// Database returns the settings passed to database.Init.
func (c Config) Database() database.Config {
	level := logger.Warn
	if c.DBEcho {
		level = logger.Info
	}
	return database.Config{
		URL:      c.DatabaseURL,
		MaxConns: c.DBMaxConns,
		LogLevel: level,
	}
}

func parseBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
