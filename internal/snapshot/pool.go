package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riversnfl/predictor/internal/riverslog"
)

// ConnectPostgres opens a pgxpool.Pool against databaseURL, the connection
// management conventions of the teacher's internal/db package (pool size
// bounds, a liveness check on acquire, an initial ping) applied to this
// engine's narrower read-only use.
func ConnectPostgres(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("snapshot: unable to parse database URL: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	config.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		return conn.Ping(ctx) == nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("snapshot: unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("snapshot: unable to ping database: %w", err)
	}

	riverslog.Info(ctx, "connected to postgres snapshot source (max_conns=%d, min_conns=%d)", maxConns, minConns)
	return pool, nil
}
