package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement in order. Statements are idempotent
// so Migrate runs on every open; the schema only ever grows.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at       TEXT NOT NULL,
		completed_at     TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_started ON work_sessions(started_at)`,
}
