package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// TxManager manages database transactions using the context pattern.
// A RunInTx/RunInReadTx call made with a context that already carries a
// transaction joins that transaction instead of opening a second one.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn within a read-write transaction.
// Isolation level: Read Committed (PostgreSQL default); callers that need
// read-validate-write consistency take row locks inside fn.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// RunInReadTx executes fn within a read-only REPEATABLE READ transaction so
// every query inside fn observes the same snapshot.
func (m *TxManager) RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return domain.NewStorageError("begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %w (original error: %v)", domain.NewStorageError("rollback", rbErr), err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return commitError(err)
	}

	return nil
}

// commitError classifies a failed commit. Deferred constraint checks fire at
// commit time; a foreign key failure there means a structural invariant was
// about to be broken.
func commitError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("commit transaction: %s: %w", pgErr.ConstraintName, domain.ErrIntegrity)
	}
	return domain.NewStorageError("commit transaction", err)
}
