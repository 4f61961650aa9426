// Command migrate applies or inspects the embedded goose migrations against
// the configured database.
//
// Usage: migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/house-inventory-backend/internal/app"
	"github.com/heartmarshall/house-inventory-backend/internal/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if command != "up" && command != "down" && command != "status" {
		fmt.Fprintf(os.Stderr, "usage: %s [up|down|status]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	provider, err := postgres.NewMigrator(pool)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer provider.Close() //nolint:errcheck

	if err := run(ctx, logger, provider, command); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, provider *goose.Provider, command string) error {
	switch command {
	case "down":
		res, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logResult(logger, res)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			attrs := []any{
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
			}
			logger.Info("migration", attrs...)
		}
	default:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, res := range results {
			logResult(logger, res)
		}
		if len(results) == 0 {
			logger.Info("no pending migrations")
		}
	}
	return nil
}

func logResult(logger *slog.Logger, res *goose.MigrationResult) {
	logger.Info("migration applied",
		slog.Int64("version", res.Source.Version),
		slog.String("direction", res.Direction),
		slog.Duration("duration", res.Duration),
	)
}
