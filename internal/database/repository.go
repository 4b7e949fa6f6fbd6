package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*LabelRepo
	*NoteRepo
}

// NewRepository creates a new Repository wrapping the given database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LabelRepo: NewLabelRepo(db),
		NoteRepo:  NewNoteRepo(db),
	}
}
