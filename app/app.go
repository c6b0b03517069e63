package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nareldigital/narel/internal/cache"
	"github.com/nareldigital/narel/internal/catalog"
	"github.com/nareldigital/narel/internal/config"
	"github.com/nareldigital/narel/internal/db"
	"github.com/nareldigital/narel/internal/handlers"
	"github.com/nareldigital/narel/internal/logging"
	"github.com/nareldigital/narel/internal/order"
	"github.com/nareldigital/narel/internal/services"
	"github.com/nareldigital/narel/internal/session"
)

type App struct {
	Config         *config.Config
	Logger         *slog.Logger
	DB             *pgxpool.Pool
	CacheProvider  cache.Provider
	SessionManager *session.Manager
	Handlers       *handlers.Handlers
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	database, err := db.Connect(startupCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	cacheProvider, err := cache.NewProvider(cache.Config{
		Provider:              cfg.CacheProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize cache provider: %w", err)
	}

	sessionStore, err := session.NewStore(startupCtx, session.Config{
		Provider:              cfg.SessionStoreProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		closeCacheProvider(logger, cacheProvider)
		database.Close()
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	sessionManager := session.NewManager(sessionStore, handlers.SecureCookiesFromConfig(cfg))

	productStore := db.NewProductStore(database)
	adminStore := db.NewAdminStore(database)

	authService, err := services.NewAuthService(adminStore, cfg.JWTSecret, logger.With("component", "auth_service"))
	if err != nil {
		closeSessionManager(logger, sessionManager)
		closeCacheProvider(logger, cacheProvider)
		database.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	if cfg.BootstrapAdminEmail != "" {
		if err := authService.EnsureBootstrapAdmin(startupCtx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
			closeSessionManager(logger, sessionManager)
			closeCacheProvider(logger, cacheProvider)
			database.Close()
			return nil, fmt.Errorf("failed to bootstrap admin user: %w", err)
		}
	}

	pricer := catalog.NewPricer()
	handoff := order.NewHandoff(cfg.WhatsAppPhone, pricer)
	catalogService := services.NewCatalogService(productStore, cacheProvider, pricer, handoff, logger.With("component", "catalog_service"))
	adminService := services.NewAdminService(productStore, catalogService, logger.With("component", "admin_service"))

	h, err := handlers.New(handlers.Dependencies{
		Config:         cfg,
		DB:             database,
		AuthService:    authService,
		CatalogService: catalogService,
		AdminService:   adminService,
		SessionManager: sessionManager,
		Logger:         logger,
	})
	if err != nil {
		closeSessionManager(logger, sessionManager)
		closeCacheProvider(logger, cacheProvider)
		database.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:         cfg,
		Logger:         logger,
		DB:             database,
		CacheProvider:  cacheProvider,
		SessionManager: sessionManager,
		Handlers:       h,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.SessionManager != nil {
		closeSessionManager(a.Logger, a.SessionManager)
	}
	if a.CacheProvider != nil {
		closeCacheProvider(a.Logger, a.CacheProvider)
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var console slog.Handler
	format := strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch format {
	case "json":
		console = slog.NewJSONHandler(os.Stdout, opts)
	default:
		console = tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel})
	}

	if path := strings.TrimSpace(cfg.LogFile); path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			return slog.New(logging.MultiHandler(console, slog.NewJSONHandler(file, opts)))
		}
	}
	return slog.New(console)
}

func closeSessionManager(logger *slog.Logger, manager *session.Manager) {
	if manager == nil {
		return
	}
	if err := manager.Close(); err != nil && logger != nil {
		logger.Warn("failed to close session manager", "error", err)
	}
}

func closeCacheProvider(logger *slog.Logger, provider cache.Provider) {
	if provider == nil {
		return
	}
	if err := provider.Close(); err != nil && logger != nil {
		logger.Warn("failed to close cache provider", "error", err)
	}
}
