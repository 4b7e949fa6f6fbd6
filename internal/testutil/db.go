// Package testutil holds shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestLabel inserts a label with a fixed id
func CreateTestLabel(t *testing.T, repo database.LabelRepository, id, name string) *models.Label {
	t.Helper()
	label := &models.Label{ID: id, Name: name}
	if err := repo.AddLabel(context.Background(), label); err != nil {
		t.Fatalf("Failed to create test label %q: %v", name, err)
	}
	return label
}

// CreateTestNote inserts a note with a fixed id
func CreateTestNote(t *testing.T, repo database.NoteRepository, id, title string) *models.Note {
	t.Helper()
	note := &models.Note{ID: id, Title: title}
	if err := repo.CreateNote(context.Background(), note); err != nil {
		t.Fatalf("Failed to create test note %q: %v", title, err)
	}
	return note
}
