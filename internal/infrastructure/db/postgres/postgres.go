package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Postgres connection pool.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect initialises a pgx connection pool and validates connectivity with
// a ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// pagination resolves optional offset/limit values to what the stored
// procedures expect.
func pagination(offset, limit *int) (int, int) {
	o, l := 0, 10
	if offset != nil {
		o = *offset
	}
	if limit != nil {
		l = *limit
	}
	return o, l
}
