package app

import (
	"context"
	"ecowsco/internal/config"
	"ecowsco/internal/db"
	"ecowsco/internal/handlers"
	"ecowsco/internal/logger"
	"ecowsco/internal/repository"
	"ecowsco/internal/routes"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	"ecowsco/internal/views"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const resetTokenCleanupInterval = time.Hour

type App struct {
	Router *mux.Router

	pool  *pgxpool.Pool
	redis *redis.Client
}

// InitApp собирает зависимости. Фоновые задачи живут, пока жив ctx.
func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.DbAutoMigrate {
		if err := db.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
		logger.Log.Info("Schema migrated")
	}

	rdb, err := db.NewRedisClient(cfg)
	if err != nil {
		conn.Close()
		return nil, err
	}

	renderer, err := views.New()
	if err != nil {
		conn.Close()
		_ = rdb.Close()
		return nil, err
	}

	// Репозитории
	vendorRepo := repository.NewVendorRepository(conn)
	productRepo := repository.NewProductRepository(conn)
	resetRepo := repository.NewPasswordResetRepository(conn)

	// Сессии
	sessionStore := session.NewStore(rdb, "sess", cfg.SessionTTL)
	sessionManager := session.NewManager(sessionStore, cfg.SessionSecret, cfg.CookieSecure)

	// Сервисы
	authService := services.NewAuthService(vendorRepo, cfg.BcryptCost)
	sessionService := services.NewSessionService(sessionStore, authService, cfg.AdminUser, cfg.AdminPass)
	passwordService := services.NewPasswordService(resetRepo, authService, services.NewEmailSender(cfg), cfg.ResetTokenTTL())
	productService := services.NewProductService(productRepo)
	adminService := services.NewAdminService(vendorRepo, productRepo)

	// Хендлеры
	h := routes.Handlers{
		Home: handlers.NewHomeHandler(renderer, map[string]func(context.Context) error{
			"postgres": conn.Ping,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Auth:     handlers.NewAuthHandler(authService, sessionService, sessionManager, renderer),
		Store:    handlers.NewStoreHandler(authService, productService, renderer),
		Password: handlers.NewPasswordHandler(passwordService, renderer, cfg.SiteURL),
		Admin:    handlers.NewAdminHandler(adminService, sessionService, sessionManager, renderer),
		Logs:     handlers.NewAdminLogsHandler(logger.Dir),
	}

	// ▶️ Фоновые задачи
	StartKeepAlive(ctx, conn, cfg.DbKeepAliveInterval)
	StartResetTokenCleaner(ctx, passwordService, resetTokenCleanupInterval)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, sessionManager, sessionService, h)

	return &App{Router: router, pool: conn, redis: rdb}, nil
}

func (a *App) Close() {
	if err := a.redis.Close(); err != nil {
		logger.Log.Warn("Redis close failed", zap.Error(err))
	}
	a.pool.Close()
}
