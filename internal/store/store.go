// Package store implements PostgreSQL persistence for users and movies.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by the repositories. The service layer translates
// these into its own error kinds.
var (
	// ErrNotFound means no row matched the lookup filter.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("store: duplicate key")
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock satisfies
// it, which keeps the repositories testable without a database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
