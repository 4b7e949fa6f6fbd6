package note

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/models"
	"github.com/thenoetrevino/notely/internal/testutil"
)

func newTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	repo := database.NewRepository(testutil.SetupTestDB(t))
	n := 0
	ids := labels.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("note-%d", n)
	})
	return NewService(repo, ids), repo
}

func TestCreateNote(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()
	testutil.CreateTestLabel(t, repo, "work", "Work")

	note, err := svc.CreateNote(ctx, CreateNoteRequest{
		Title:    "  Standup  ",
		Body:     "notes from standup",
		LabelIDs: []string{"work"},
	})
	require.NoError(t, err)
	assert.Equal(t, "note-1", note.ID)
	assert.Equal(t, "Standup", note.Title)
	require.Len(t, note.Labels, 1)
	assert.Equal(t, "Work", note.Labels[0].Name)
}

func TestCreateNote_Validation(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateNoteRequest
		wantErr error
	}{
		{"empty title", CreateNoteRequest{Title: "  "}, ErrEmptyTitle},
		{"long title", CreateNoteRequest{Title: strings.Repeat("t", MaxTitleLength+1)}, ErrTitleTooLong},
		{"unknown label", CreateNoteRequest{Title: "ok", LabelIDs: []string{"nope"}}, models.ErrLabelNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	notes, err := repo.GetAllNotes(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, notes, "failed creates leave nothing behind")
}

func TestAttachDetachAndFilter(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()
	testutil.CreateTestLabel(t, repo, "home", "Home")

	a, err := svc.CreateNote(ctx, CreateNoteRequest{Title: "Groceries"})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, CreateNoteRequest{Title: "Standup"})
	require.NoError(t, err)

	require.NoError(t, svc.AttachLabel(ctx, a.ID, "home"))
	filtered, err := svc.ListNotes(ctx, "home")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, a.ID, filtered[0].ID)

	require.NoError(t, svc.DetachLabel(ctx, a.ID, "home"))
	filtered, err = svc.ListNotes(ctx, "home")
	require.NoError(t, err)
	assert.Empty(t, filtered)

	assert.ErrorIs(t, svc.AttachLabel(ctx, "missing", "home"), models.ErrNoteNotFound)
	assert.ErrorIs(t, svc.AttachLabel(ctx, a.ID, "missing"), models.ErrLabelNotFound)
	assert.ErrorIs(t, svc.AttachLabel(ctx, "", "home"), ErrInvalidNoteID)
	assert.ErrorIs(t, svc.AttachLabel(ctx, a.ID, ""), ErrInvalidLabelID)
}

func TestUpdateAndDeleteNote(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteRequest{Title: "Draft", Body: "v1"})
	require.NoError(t, err)

	body := "v2"
	require.NoError(t, svc.UpdateNote(ctx, UpdateNoteRequest{ID: n.ID, Body: &body}))
	got, err := svc.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft", got.Title)
	assert.Equal(t, "v2", got.Body)

	empty := " "
	assert.ErrorIs(t, svc.UpdateNote(ctx, UpdateNoteRequest{ID: n.ID, Title: &empty}), ErrEmptyTitle)

	require.NoError(t, svc.DeleteNote(ctx, n.ID))
	_, err = svc.GetNote(ctx, n.ID)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, ""), ErrInvalidNoteID)
}
