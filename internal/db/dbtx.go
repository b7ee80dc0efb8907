package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface repositories need. *sql.DB and *sql.Tx both
// satisfy it, and tests wrap it to inject failures.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
