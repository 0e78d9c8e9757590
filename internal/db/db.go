package db

import (
	"context"
	"ecowsco/internal/config"
	"ecowsco/internal/logger"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.DbConnectTimeout
	poolCfg.MaxConnIdleTime = cfg.DbIdleTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DbConnectTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Log.Error("PostgreSQL ping failed", zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Connected to PostgreSQL", zap.String("dsn", cfg.GetDSNSafe()))
	return pool, nil
}
