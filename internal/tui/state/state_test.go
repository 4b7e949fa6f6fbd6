package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/notely/internal/models"
)

func TestListViewStateNavigation(t *testing.T) {
	t.Parallel()

	s := NewListViewState()
	assert.Nil(t, s.Selected())

	s.SetLabels([]*models.Label{{ID: "1", Name: "Work"}, {ID: "2", Name: "Home"}})
	assert.Equal(t, "1", s.Selected().ID)

	s.MoveUp()
	assert.Equal(t, 0, s.SelectedRow())

	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 1, s.SelectedRow())
	assert.Equal(t, "2", s.Selected().ID)
}

func TestListViewStateClampsAfterShrink(t *testing.T) {
	t.Parallel()

	s := NewListViewState()
	s.SetLabels([]*models.Label{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	s.MoveDown()
	s.MoveDown()

	s.SetLabels([]*models.Label{{ID: "1"}})
	assert.Equal(t, 0, s.SelectedRow())

	s.SetLabels(nil)
	assert.Equal(t, 0, s.SelectedRow())
	assert.Nil(t, s.Selected())
}

func TestNotificationStateRemoveByID(t *testing.T) {
	t.Parallel()

	s := NewNotificationState()
	first := s.Add(LevelError, "🗑", "Label deleted")
	second := s.Add(LevelInfo, "", "Saved")

	s.Remove(first)
	assert.Len(t, s.All(), 1)
	assert.Equal(t, second, s.All()[0].ID)
	assert.Equal(t, second, s.LastID())

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestUIStateMode(t *testing.T) {
	t.Parallel()

	s := NewUIState()
	assert.Equal(t, NormalMode, s.Mode())
	s.SetMode(DeleteConfirmMode)
	assert.Equal(t, DeleteConfirmMode, s.Mode())
	s.SetSize(80, 24)
	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
}
