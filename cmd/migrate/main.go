package main

import (
	"context"
	"ecowsco/internal/config"
	"ecowsco/internal/db"
	"ecowsco/internal/logger"

	"go.uber.org/zap"
)

// Применяет схему. Повторный запуск безопасен.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.InitLogger(&config.Config{})
		logger.Log.Fatal("Config load failed", zap.Error(err))
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.Fatal("Unable to connect to database", zap.Error(err))
	}
	defer conn.Close()

	if err := db.Migrate(context.Background(), conn); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Schema is up to date", zap.String("dsn", cfg.GetDSNSafe()))
}
