package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/house-inventory-backend/migrations"
)

// ErrPendingMigrations is returned by CheckSchema when the database lags
// behind the embedded migrations.
var ErrPendingMigrations = errors.New("database schema has pending migrations")

// NewMigrator returns a goose provider over the embedded migrations that
// borrows connections from pool. Close the provider before the pool.
func NewMigrator(pool *pgxpool.Pool) (*goose.Provider, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// CheckSchema reports ErrPendingMigrations unless every embedded migration
// has been applied.
func CheckSchema(ctx context.Context, provider *goose.Provider) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("check pending migrations: %w", err)
	}
	if pending {
		return ErrPendingMigrations
	}
	return nil
}
