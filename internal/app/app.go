// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	containerrepo "github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres/container"
	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres/containerlog"
	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres/house"
	"github.com/heartmarshall/house-inventory-backend/internal/auth"
	"github.com/heartmarshall/house-inventory-backend/internal/config"
	"github.com/heartmarshall/house-inventory-backend/internal/metrics"
	"github.com/heartmarshall/house-inventory-backend/internal/service/container"
	"github.com/heartmarshall/house-inventory-backend/internal/service/explorer"
	"github.com/heartmarshall/house-inventory-backend/internal/transport/middleware"
	"github.com/heartmarshall/house-inventory-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, serves HTTP until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer migrator.Close() //nolint:errcheck

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := buildHandler(cfg, logger, pool, limiter, rest.Check{
		Name: "schema",
		Run:  func(ctx context.Context) error { return postgres.CheckSchema(ctx, migrator) },
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildHandler assembles repositories, services and the routed handler.
func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	limiter *middleware.RateLimiter,
	extraChecks ...rest.Check,
) http.Handler {
	txm := postgres.NewTxManager(pool)
	containers := containerrepo.New(pool)
	logs := containerlog.New(pool)
	houses := house.New(pool)
	recorder := metrics.NewRecorder()

	mutations := container.NewService(logger, containers, houses, logs, txm, recorder)
	queries := explorer.NewService(logger, containers, logs, houses, txm, recorder, explorer.Limits{
		SearchLimit:     cfg.Inventory.SearchLimit,
		HouseLogDefault: cfg.Inventory.HouseLogDefaultLimit,
		HouseLogMax:     cfg.Inventory.HouseLogMaxLimit,
		PreviewSize:     cfg.Inventory.PreviewSize,
	})

	checks := append([]rest.Check{{Name: "database", Run: pool.Ping}}, extraChecks...)

	return newRouter(routerDeps{
		cfg:        cfg,
		logger:     logger,
		tokens:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		limiter:    limiter,
		containers: rest.NewContainerHandler(mutations, queries, logger),
		health:     rest.NewHealthHandler(BuildVersion(), checks...),
		metrics:    recorder,
	})
}
