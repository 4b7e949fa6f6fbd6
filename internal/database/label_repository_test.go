package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/models"
)

func TestLabelRepo_AddAndList(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	createTestLabel(t, repo, "c", "Work")
	createTestLabel(t, repo, "a", "Home")
	createTestLabel(t, repo, "b", "Errands")

	labels, err := repo.GetAllLabels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 3)

	// Insertion order, not id or name order
	assert.Equal(t, "Work", labels[0].Name)
	assert.Equal(t, "Home", labels[1].Name)
	assert.Equal(t, "Errands", labels[2].Name)
}

func TestLabelRepo_EmptyList(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	labels, err := repo.GetAllLabels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestLabelRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	createTestLabel(t, repo, "1", "Work")

	label, err := repo.GetLabelByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, &models.Label{ID: "1", Name: "Work"}, label)

	_, err = repo.GetLabelByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrLabelNotFound)
}

func TestLabelRepo_Update(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	createTestLabel(t, repo, "1", "Work")

	require.NoError(t, repo.UpdateLabel(ctx, "1", "work"))
	label, err := repo.GetLabelByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "work", label.Name)

	err = repo.UpdateLabel(ctx, "missing", "Anything")
	assert.ErrorIs(t, err, models.ErrLabelNotFound)
}

func TestLabelRepo_Delete(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	createTestLabel(t, repo, "1", "Work")
	createTestLabel(t, repo, "2", "Home")

	require.NoError(t, repo.DeleteLabel(ctx, "1"))
	labels, err := repo.GetAllLabels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "2", labels[0].ID)

	assert.ErrorIs(t, repo.DeleteLabel(ctx, "1"), models.ErrLabelNotFound)
}

func TestLabelRepo_Constraints(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	createTestLabel(t, repo, "1", "Work")
	createTestLabel(t, repo, "2", "Home")

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name:    "duplicate id",
			run:     func() error { return repo.AddLabel(ctx, &models.Label{ID: "1", Name: "Other"}) },
			wantErr: models.ErrDuplicateID,
		},
		{
			name:    "duplicate name any case",
			run:     func() error { return repo.AddLabel(ctx, &models.Label{ID: "3", Name: "WORK"}) },
			wantErr: models.ErrDuplicateName,
		},
		{
			name:    "rename onto another label",
			run:     func() error { return repo.UpdateLabel(ctx, "2", "work") },
			wantErr: models.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
