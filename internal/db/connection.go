// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/deepakbishnoi717/atm/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	// Import postgres driver for registration with database/sql)
	_ "github.com/lib/pq"
)

// DB wraps the GORM handle together with the underlying connection pool
type DB struct {
	*gorm.DB
	pool   *sql.DB
	logger *slog.Logger
}

// Connect establishes a connection to the database
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
		"from_url", cfg.URL != "",
	)

	pool, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Error("failed to open database connection", "error", err)
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := pool.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		_ = pool.Close() //nolint:errcheck // connection is unusable either way
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database, err := wrap(pool, logger, cfg.SlowQuery)
	if err != nil {
		_ = pool.Close() //nolint:errcheck // connection is unusable either way
		return nil, err
	}

	logger.Info("successfully connected to database",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return database, nil
}

func wrap(pool *sql.DB, logger *slog.Logger, slowQuery time.Duration) (*DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		Logger:                 newGormLogger(logger, slowQuery),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		logger.Error("failed to initialise orm", "error", err)
		return nil, fmt.Errorf("failed to initialise orm: %w", err)
	}

	return &DB{
		DB:     gormDB,
		pool:   pool,
		logger: logger,
	}, nil
}

// newGormLogger routes GORM's own logging through slog at warn level so slow
// queries and driver errors land in the same JSON stream as the rest of the app.
func newGormLogger(logger *slog.Logger, slowQuery time.Duration) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// PingContext verifies the pool can still reach the database.
func (db *DB) PingContext(ctx context.Context) error {
	return db.pool.PingContext(ctx)
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.pool.Close()
}
