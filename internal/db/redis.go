package db

import (
	"context"
	"ecowsco/internal/config"
	"ecowsco/internal/logger"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient подключается к Redis сессий и проверяет соединение.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.DbConnectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DbConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Log.Error("Redis ping failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return client, nil
}
