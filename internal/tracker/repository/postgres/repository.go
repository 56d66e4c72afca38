// Package postgres implements the tracker store on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the connection pool. Zero values keep the pgx defaults.
type PoolConfig struct {
	MinConns    int32
	MaxConns    int32
	PingTimeout time.Duration
}

// Repository implements the store operations of the tracker.
type Repository struct {
	db      DB
	metrics Metrics
}

// NewRepository wraps an open connection pool.
func NewRepository(db DB, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// Connect opens a pgx pool and pings it before handing it out.
func Connect(ctx context.Context, dsn string, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := poolConfig(dsn, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

func poolConfig(dsn string, cfg PoolConfig) (*pgxpool.Config, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if cfg.MinConns < 0 || cfg.MaxConns < 0 {
		return nil, fmt.Errorf("negative pool size: min %d max %d", cfg.MinConns, cfg.MaxConns)
	}
	if cfg.MaxConns > 0 && cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("min conns %d exceeds max conns %d", cfg.MinConns, cfg.MaxConns)
	}
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MinConns > 0 {
		config.MinConns = cfg.MinConns
	}
	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	return config, nil
}
