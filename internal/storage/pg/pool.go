package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	ConnStr string
}

type ConnectionPool struct {
	conn *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	dbpool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection conn: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return &ConnectionPool{conn: dbpool}, nil
}

func (p *ConnectionPool) GetConn() *pgxpool.Pool {
	return p.conn
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}

func (p *ConnectionPool) Ping(ctx context.Context) error {
	c, err := p.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	return c.Ping(ctx)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS calc_history (
    id         UUID PRIMARY KEY,
    expression TEXT        NOT NULL,
    result     TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS calc_history_created_at_idx ON calc_history (created_at DESC, id DESC);
`

// EnsureSchema creates the history table when it does not exist yet.
func (p *ConnectionPool) EnsureSchema(ctx context.Context) error {
	if _, err := p.conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure calc_history schema: %w", err)
	}
	return nil
}
