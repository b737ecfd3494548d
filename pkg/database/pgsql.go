package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmptyURL is returned when no connection string is configured.
var ErrEmptyURL = errors.New("database URL cannot be empty")

// PoolOptions tunes the ledger's connection pool. Zero values keep the pgx defaults.
type PoolOptions struct {
	// PingCheck verifies the connection before the pool is returned.
	PingCheck      bool
	MaxConns       int32
	ConnectTimeout time.Duration
}

// DefaultPoolOptions suits a single-owner ledger: few connections, fail fast.
func DefaultPoolOptions(pingCheck bool) PoolOptions {
	return PoolOptions{PingCheck: pingCheck, MaxConns: 4, ConnectTimeout: 10 * time.Second}
}

// NewPgxPool creates a PostgreSQL connection pool for the ledger tables.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions, logger *slog.Logger) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, ErrEmptyURL
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if opts.PingCheck {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Connected to PostgreSQL", slog.String("host", config.ConnConfig.Host), slog.String("database", config.ConnConfig.Database))
	}
	return pool, nil
}

// ClosePgxPool closes the pool; a nil pool is ignored.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	logger.Info("PostgreSQL connection pool closed")
}
