package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/oakline/storefront/internal/config"
	handler "github.com/oakline/storefront/internal/handler/http"
	"github.com/oakline/storefront/internal/repository/memory"
	"github.com/oakline/storefront/internal/service"
	"github.com/oakline/storefront/pkg/health"
	"github.com/oakline/storefront/pkg/middleware"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *memory.Store
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize the in-memory store and seed the launch catalog plus the
	// admin account.
	store := memory.NewStore()
	if err := store.Seed(ctx, memory.SeedConfig{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	logger.Info("in-memory store seeded")

	// Build the dependency graph.
	productRepo := memory.NewProductRepository(store)
	userRepo := memory.NewUserRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	cartRepo := memory.NewCartRepository(store)

	catalogService := service.NewCatalogService(productRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger, cfg.ReviewAutoApprove)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("store", store.Ping)

	// HTTP router.
	router := handler.NewRouter(catalogService, reviewService, cartService, userService, handler.RouterConfig{
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
		Health: healthHandler,
		Logger: logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
