package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pocketflow/internal/db"
	"github.com/alexanderramin/pocketflow/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo on the work_sessions table.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.WorkSession) (int64, error) {
	query := `INSERT INTO work_sessions (started_at, completed_at, duration_seconds)
		VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		formatTimestamp(s.StartedAt),
		formatTimestamp(s.CompletedAt),
		s.DurationSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting work session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading work session id: %w", err)
	}
	return id, nil
}

func (r *SQLiteSessionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM work_sessions WHERE started_at >= ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, formatTimestamp(since)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting work sessions: %w", err)
	}
	return count, nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.WorkSession, error) {
	query := `SELECT id, started_at, completed_at, duration_seconds
		FROM work_sessions WHERE id = ?`

	var s domain.WorkSession
	var startedAtStr, completedAtStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &startedAtStr, &completedAtStr, &s.DurationSeconds)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work session %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	if s.StartedAt, err = parseTimestamp(startedAtStr); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if s.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	return &s, nil
}
