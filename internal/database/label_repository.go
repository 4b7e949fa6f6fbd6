package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/notely/internal/models"
)

// LabelRepo handles pure data access for labels.
// No validation happens here; callers validate names first.
type LabelRepo struct {
	db *sql.DB
}

// NewLabelRepo creates a label repository on db
func NewLabelRepo(db *sql.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

// GetAllLabels returns every label in insertion order
func (r *LabelRepo) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM labels ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
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

// GetLabelByID returns the label with id or models.ErrLabelNotFound
func (r *LabelRepo) GetLabelByID(ctx context.Context, id string) (*models.Label, error) {
	label := &models.Label{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM labels WHERE id = ?`, id).
		Scan(&label.ID, &label.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLabelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label %s: %w", id, err)
	}
	return label, nil
}

// AddLabel inserts label with its caller-assigned ID
func (r *LabelRepo) AddLabel(ctx context.Context, label *models.Label) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO labels (id, name) VALUES (?, ?)`, label.ID, label.Name)
	if err != nil {
		return fmt.Errorf("failed to create label: %w", translateConstraint(err))
	}
	return nil
}

// UpdateLabel renames the label with id
func (r *LabelRepo) UpdateLabel(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE labels SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update label %s: %w", id, translateConstraint(err))
	}
	return requireAffected(result, models.ErrLabelNotFound)
}

// DeleteLabel removes a label; the cascade detaches it from all notes
func (r *LabelRepo) DeleteLabel(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete label %s: %w", id, err)
	}
	return requireAffected(result, models.ErrLabelNotFound)
}

// requireAffected returns notFound when result touched no rows
func requireAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// translateConstraint maps SQLite unique violations on labels to domain errors
func translateConstraint(err error) error {
	msg := err.Error()
	switch {
	case !strings.Contains(msg, "UNIQUE constraint failed"):
		return err
	case strings.Contains(msg, "labels.name"):
		return models.ErrDuplicateName
	default:
		return models.ErrDuplicateID
	}
}
