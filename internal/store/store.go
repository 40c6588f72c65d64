// Package store implements table-level persistence for items and their
// dependent photo and location rows.
package store

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned by mutations that matched no row. Lookups
// signal absence with a nil result instead.
var ErrNotFound = errors.New("not found")

// Querier is the database surface the stores need. Both *sql.DB and
// *sql.Tx satisfy it, so a store can be scoped to a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
