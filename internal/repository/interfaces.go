package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pocketflow/internal/domain"
)

// SessionRepo is the append-only store of completed work sessions.
type SessionRepo interface {
	// Save appends s and returns the row id the store assigned.
	Save(ctx context.Context, s *domain.WorkSession) (int64, error)
	// CountSince counts sessions whose start is at or after since. On error
	// the count is zero.
	CountSince(ctx context.Context, since time.Time) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkSession, error)
}
