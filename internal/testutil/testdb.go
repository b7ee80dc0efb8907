package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/pocketflow/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// CountRows returns the number of persisted work sessions.
func CountRows(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM work_sessions`).Scan(&n); err != nil {
		t.Fatalf("counting work_sessions: %v", err)
	}
	return n
}
