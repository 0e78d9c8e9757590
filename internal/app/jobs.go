package app

import (
	"context"
	"ecowsco/internal/logger"
	"time"

	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type tokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartKeepAlive периодически пингует БД, чтобы пул не простаивал
// (бесплатные managed Postgres засыпают без запросов).
func StartKeepAlive(ctx context.Context, db pinger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if ctx.Err() != nil {
					return
				}
				pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				err := db.Ping(pingCtx)
				cancel()
				if err != nil {
					logger.Log.Warn("DB keep-alive ping failed", zap.Error(err))
					continue
				}
				logger.Log.Debug("DB keep-alive ping ok")
			}
		}
	}()
}

// StartResetTokenCleaner удаляет истёкшие токены сброса пароля.
func StartResetTokenCleaner(ctx context.Context, svc tokenPurger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if ctx.Err() != nil {
					return
				}
				n, err := svc.PurgeExpired(ctx)
				if err != nil {
					logger.Log.Warn("Reset token cleanup failed", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Log.Info("Expired reset tokens removed", zap.Int64("count", n))
				}
			}
		}
	}()
}
