package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/models"
)

func TestWithTxCommits(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO labels (id, name) VALUES ('l1', 'Work')`)
		return err
	})
	require.NoError(t, err)

	labels, err := NewLabelRepo(db).GetAllLabels(ctx)
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO labels (id, name) VALUES ('l1', 'Work')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	labels, err := NewLabelRepo(db).GetAllLabels(ctx)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestCreateNoteWithUnknownLabelLeavesNothing(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	note := &models.Note{
		ID:     "n1",
		Title:  "Standup",
		Labels: []*models.Label{{ID: "missing"}},
	}
	err := repo.CreateNote(ctx, note)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLabelNotFound)

	_, err = repo.GetNoteByID(ctx, "n1")
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
}

func TestCreateNoteLinksLabels(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	work := createTestLabel(t, repo, "l1", "Work")
	note := &models.Note{ID: "n1", Title: "Standup", Labels: []*models.Label{work}}
	require.NoError(t, repo.CreateNote(ctx, note))

	got, err := repo.GetNoteByID(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, got.HasLabel("l1"))
}
