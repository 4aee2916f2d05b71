package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "db_tx"

// Txer begins a transaction and runs a function inside it. Services
// depend on this interface so tests can substitute a passthrough.
type Txer interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type poolTxer struct{ pool *pgxpool.Pool }

// NewTxer returns a Txer backed by the connection pool.
func NewTxer(pool *pgxpool.Pool) Txer { return &poolTxer{pool: pool} }

func (t *poolTxer) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, t.pool, fn)
}

// WithTx runs fn inside a transaction carried on the context, so every
// repository call inside fn joins the same transaction.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// TxFromContext retrieves the transaction placed by WithTx, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}
