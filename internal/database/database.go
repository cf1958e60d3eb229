package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogly/internal/models"
)

// Config holds DB configuration
type Config struct {
	// URL is either a postgres:// connection string or a SQLite file path.
	URL      string
	MaxConns int
	LogLevel logger.LogLevel
}

// Init opens the database named by cfg.URL and runs migrations
func Init(cfg Config) (*gorm.DB, error) {
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}
	if cfg.URL == "" {
		cfg.URL = GetDefaultDBPath()
	}

	gormLogger := logger.New(
		log.New(loggerWriter{}, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  IsDevelopment(),
		},
	)
	gormCfg := &gorm.Config{Logger: gormLogger}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresURL(cfg.URL) {
		db, err = openPostgres(cfg, gormCfg)
	} else {
		db, err = openSQLite(cfg, gormCfg)
	}
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// IsPostgresURL reports whether url selects the Postgres driver.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func openSQLite(cfg Config, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", cfg.URL)

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Configure connection pool for SQLite to prevent "database is locked" errors
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

func openPostgres(cfg Config, gormCfg *gorm.Config) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	connCfg.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement
	connCfg.StatementCacheCapacity = 256

	sqlDB := stdlib.OpenDB(*connCfg)
	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.MaxConns)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

// migrate runs all automigrations. Keep the model list in one place.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// loggerWriter satisfies io.Writer for GORM logger but delegates to std log.Printf
type loggerWriter struct{}

func (loggerWriter) Write(p []byte) (int, error) {
	log.Printf("%s", p)
	return len(p), nil
}
