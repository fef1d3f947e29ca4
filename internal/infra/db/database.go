package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recipe-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens a pool and pings it; the returned cleanup closes the pool.
func Connect(cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "recipe-scheduler"

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connected", "host", cfg.Host, "db", cfg.DBName, "max_conns", poolCfg.MaxConns)

	cleanup := func() {
		stat := pool.Stat()
		pool.Close()
		logger.Info("database pool closed", "acquired_total", stat.AcquireCount(), "canceled_acquires", stat.CanceledAcquireCount())
	}

	return pool, cleanup, nil
}
