package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/pocketflow/internal/db"
)

// FailingExecDB wraps a DBTX and returns Err from ExecContext while Failing
// is set. Reads pass through, so counts still reflect what was stored.
type FailingExecDB struct {
	db.DBTX
	Err     error
	Failing atomic.Bool
	calls   atomic.Int32
}

// NewFailingExecDB returns a wrapper that fails every write until Failing is
// cleared.
func NewFailingExecDB(inner db.DBTX, err error) *FailingExecDB {
	f := &FailingExecDB{DBTX: inner, Err: err}
	f.Failing.Store(true)
	return f
}

func (f *FailingExecDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls.Add(1)
	if f.Failing.Load() {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// ExecCalls reports how many writes were attempted, failed or not.
func (f *FailingExecDB) ExecCalls() int {
	return int(f.calls.Load())
}
