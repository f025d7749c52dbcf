package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/transport/middleware"
	"github.com/lifeos/lifeos-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations when enabled and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Gamification.Timezone),
	)

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(startCtx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(startCtx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	migrator, closeMigrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer func() { _ = closeMigrator() }()

	svc := NewServices(logger, pool, cfg)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, migrator, Version),
		Auth:      rest.NewAuthHandler(svc.Auth, svc.User, logger),
		Budget:    rest.NewBudgetHandler(svc.Ledger, svc.Impex, cfg.Budget.ImportMaxBytes, logger),
		Dashboard: rest.NewDashboardHandler(svc.Dashboard, svc.Gamification, logger),
		Tasks:     rest.NewTaskHandler(svc.Task, logger),
		Notes:     rest.NewNoteHandler(svc.Note, logger),
		Focus:     rest.NewFocusHandler(svc.Focus, logger),
		Habits:    rest.NewHabitHandler(svc.Habit, logger),
	}, rest.RouterConfig{
		Logger:    logger,
		Tokens:    svc.Auth,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
