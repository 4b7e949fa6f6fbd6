package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/notely/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testDataDir returns a fresh data directory for file-backed tests
func testDataDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data")
}

// ============================================================================
// FIXTURE HELPERS
// ============================================================================

func createTestLabel(t *testing.T, repo *Repository, id, name string) *models.Label {
	t.Helper()
	label := &models.Label{ID: id, Name: name}
	if err := repo.AddLabel(context.Background(), label); err != nil {
		t.Fatalf("Failed to create label %q: %v", name, err)
	}
	return label
}

func createTestNote(t *testing.T, repo *Repository, id, title string) *models.Note {
	t.Helper()
	note := &models.Note{ID: id, Title: title, Body: "body of " + title}
	if err := repo.CreateNote(context.Background(), note); err != nil {
		t.Fatalf("Failed to create note %q: %v", title, err)
	}
	return note
}
