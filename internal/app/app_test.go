package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/labels"
	labelservice "github.com/thenoetrevino/notely/internal/services/label"
	noteservice "github.com/thenoetrevino/notely/internal/services/note"
)

func TestNew(t *testing.T) {
	t.Parallel()

	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)

	app := New(db)
	t.Cleanup(func() { _ = app.Close() })

	assert.NotNil(t, app.LabelService)
	assert.NotNil(t, app.NoteService)
	assert.NotNil(t, app.Repo())
}

func TestServicesShareRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)

	n := 0
	app := New(db, WithIDGenerator(labels.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})))
	t.Cleanup(func() { _ = app.Close() })

	label, err := app.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", label.ID)

	note, err := app.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
		Title:    "Standup",
		LabelIDs: []string{label.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-2", note.ID)

	require.NoError(t, app.LabelService.DeleteLabel(ctx, label.ID))

	got, err := app.NoteService.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Labels)

	all, err := app.Repo().GetAllLabels(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCloseNilDB(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&App{}).Close())
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := New(db, WithLogger(logger))
	t.Cleanup(func() { _ = app.Close() })

	assert.Same(t, logger, app.logger)
	assert.Same(t, slog.Default(), New(db).logger)
}
