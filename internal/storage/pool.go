// Package storage writes generated datasets directly into PostgreSQL.
//
// It manages a pgxpool connection pool, applies the embedded schema, and
// ingests each batch with COPY.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultCopyTimeout bounds a single COPY so a hung server cannot stall the run.
const DefaultCopyTimeout = 30 * time.Second

// DB wraps a pgxpool.Pool. It implements sink.Sink.
type DB struct {
	pool        *pgxpool.Pool
	logger      *slog.Logger
	copyTimeout time.Duration
}

// New creates a DB with a connection pool and verifies connectivity.
// A zero copyTimeout selects DefaultCopyTimeout.
func New(ctx context.Context, dsn string, copyTimeout time.Duration, logger *slog.Logger) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("storage: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: ping pool: %w", err)
	}

	if copyTimeout <= 0 {
		copyTimeout = DefaultCopyTimeout
	}
	return &DB{
		pool:        pool,
		logger:      logger,
		copyTimeout: copyTimeout,
	}, nil
}

// Pool returns the underlying connection pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping checks connectivity to the database.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
