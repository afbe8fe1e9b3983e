//go:build integration

package data

import (
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// setupTestDB creates a new in-memory SQLite database with the full schema
// applied. It returns the database and a teardown function to be deferred.
func setupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	// Use a non-shared in-memory database for complete test isolation.
	db, err := sqlx.Connect("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to connect to sqlite test database: %v", err)
	}
	db.MustExec("PRAGMA foreign_keys = ON")

	schema, err := os.ReadFile("../../migrations/000001_initial_schema.up.sql")
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}
	db.MustExec(string(schema))

	teardown := func() {
		db.Close()
	}
	return db, teardown
}
