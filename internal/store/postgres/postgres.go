// Package postgres implements store.Store on PostgreSQL via pgx. Money
// columns are NUMERIC(10,2) moved as text to keep fixed-point semantics;
// order numbers come from a dedicated sequence so allocation stays
// linearizable across server instances.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-pos/internal/database"
	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/store"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, letting every
// repository method run inside or outside a transaction unchanged.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the PostgreSQL-backed store.
type Store struct {
	db   *database.DB
	q    querier
	inTx bool
}

// NewStore creates a store on top of the shared connection pool.
func NewStore(db *database.DB) *Store {
	return &Store{db: db, q: db.Pool}
}

// WithinTx runs fn inside a database transaction. Nested calls join the
// ambient transaction instead of opening a new one.
func (s *Store) WithinTx(ctx context.Context, fn func(store.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txStore := &Store{db: s.db, q: tx, inTx: true}
	if err := fn(txStore); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// staleOrMissing distinguishes a revision mismatch from a missing row
// after a guarded UPDATE matched nothing.
func (s *Store) staleOrMissing(ctx context.Context, existsSQL string, id uuid.UUID, entity string) error {
	var exists bool
	if err := s.q.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", entity, err)
	}
	if exists {
		return fmt.Errorf("%w: %s %s was modified concurrently", errs.ErrConflict, entity, id)
	}
	return fmt.Errorf("%w: %s %s", errs.ErrNotFound, entity, id)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// NextOrderNumber allocates the next order number from the sequence.
// Numbers allocated inside a transaction that later rolls back are
// burned, never reused.
func (s *Store) NextOrderNumber(ctx context.Context) (int64, error) {
	var number int64
	if err := s.q.QueryRow(ctx, nextOrderNumberSQL).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to allocate order number: %w", err)
	}
	return number, nil
}
