package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/notely/internal/models"
)

// NoteRepo handles pure data access for notes and their label links
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a note repository on db
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// CreateNote inserts note with its caller-assigned ID and stamps its times.
// Labels already set on note are linked in the same transaction.
func (r *NoteRepo) CreateNote(ctx context.Context, note *models.Note) error {
	now := time.Now().UTC()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, title, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			note.ID, note.Title, note.Body, now, now,
		); err != nil {
			return translateConstraint(err)
		}
		for _, label := range note.Labels {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO note_labels (note_id, label_id) VALUES (?, ?)`,
				note.ID, label.ID,
			); err != nil {
				return translateLinkError(err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	note.CreatedAt = now
	note.UpdatedAt = now
	return nil
}

// GetNoteByID returns the note with its labels, or models.ErrNoteNotFound
func (r *NoteRepo) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	note := &models.Note{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, body, created_at, updated_at FROM notes WHERE id = ?`, id,
	).Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}

	labels, err := r.GetLabelsForNote(ctx, id)
	if err != nil {
		return nil, err
	}
	note.Labels = labels
	return note, nil
}

// GetAllNotes returns notes newest first, each with its labels.
// A non-empty labelID restricts the result to notes carrying that label.
func (r *NoteRepo) GetAllNotes(ctx context.Context, labelID string) ([]*models.Note, error) {
	query := `SELECT id, title, body, created_at, updated_at FROM notes`
	args := []any{}
	if labelID != "" {
		query += ` WHERE id IN (SELECT note_id FROM note_labels WHERE label_id = ?)`
		args = append(args, labelID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	notes := []*models.Note{}
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt); err != nil {
			_ = rows.Close()
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// The pool holds a single connection, so rows must be released before
	// the per-note label queries below
	if err := rows.Close(); err != nil {
		return nil, err
	}

	for _, note := range notes {
		labels, err := r.GetLabelsForNote(ctx, note.ID)
		if err != nil {
			return nil, err
		}
		note.Labels = labels
	}
	return notes, nil
}

// UpdateNote replaces the title and body of a note
func (r *NoteRepo) UpdateNote(ctx context.Context, id, title, body string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ?, updated_at = ? WHERE id = ?`,
		title, body, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", id, err)
	}
	return requireAffected(result, models.ErrNoteNotFound)
}

// DeleteNote removes a note and its label links
func (r *NoteRepo) DeleteNote(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return requireAffected(result, models.ErrNoteNotFound)
}

// GetLabelsForNote returns the labels attached to a note in label insertion order
func (r *NoteRepo) GetLabelsForNote(ctx context.Context, noteID string) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.name
		FROM labels l
		INNER JOIN note_labels nl ON l.id = nl.label_id
		WHERE nl.note_id = ?
		ORDER BY l.rowid
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels for note %s: %w", noteID, err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// AddLabelToNote links a label to a note; linking twice is a no-op
func (r *NoteRepo) AddLabelToNote(ctx context.Context, noteID, labelID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO note_labels (note_id, label_id) VALUES (?, ?)`,
		noteID, labelID,
	)
	if err != nil {
		return fmt.Errorf("failed to add label %s to note %s: %w", labelID, noteID, translateLinkError(err))
	}
	return nil
}

// RemoveLabelFromNote unlinks a label from a note
func (r *NoteRepo) RemoveLabelFromNote(ctx context.Context, noteID, labelID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM note_labels WHERE note_id = ? AND label_id = ?`,
		noteID, labelID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove label %s from note %s: %w", labelID, noteID, err)
	}
	return nil
}
