// Command verify-tree scans every house's container tree for cycles, items
// with children and parents in another house. It never modifies data and is
// meant to be run by an operator or a cron job.
//
// Exit codes: 0 = clean, 1 = error, 3 = defects found.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres/container"
	"github.com/heartmarshall/house-inventory-backend/internal/app"
	"github.com/heartmarshall/house-inventory-backend/internal/config"
	"github.com/heartmarshall/house-inventory-backend/internal/service/integrity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := integrity.NewService(logger, container.New(pool), postgres.NewTxManager(pool))

	report, err := svc.Scan(ctx)
	if err != nil {
		logger.Error("integrity scan failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !report.OK() {
		logger.Warn("container trees need attention",
			slog.Int("problems", len(report.Problems)),
			slog.Int("houses", report.Houses),
		)
		os.Exit(3)
	}
}
