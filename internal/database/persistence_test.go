package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/models"
)

// TestPersistence_SurvivesReopen checks that mutations are durable across restarts
func TestPersistence_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := testDataDir(t)

	db, err := InitDB(ctx, dir)
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.AddLabel(ctx, &models.Label{ID: "1", Name: "Work"}))
	require.NoError(t, repo.AddLabel(ctx, &models.Label{ID: "2", Name: "Home"}))
	require.NoError(t, repo.UpdateLabel(ctx, "1", "Office"))
	require.NoError(t, repo.DeleteLabel(ctx, "2"))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, dir)
	require.NoError(t, err)
	defer db.Close()

	labels, err := NewRepository(db).GetAllLabels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*models.Label{{ID: "1", Name: "Office"}}, labels)
}

// TestMigrations_Idempotent checks that reopening does not reapply migrations
func TestMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	dir := testDataDir(t)

	for i := 0; i < 3; i++ {
		db, err := InitDB(ctx, dir)
		require.NoError(t, err)

		var version int
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
		assert.Equal(t, schemaVersion, version)
		require.NoError(t, db.Close())
	}
}
