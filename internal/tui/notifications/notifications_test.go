package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

func TestFromStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Info, FromStyle(labels.StyleInfo))
	assert.Equal(t, Success, FromStyle(labels.StyleSuccess))
	assert.Equal(t, Error, FromStyle(labels.StyleError))
	assert.Equal(t, state.LevelError, Error.Level())
}

func TestRenderUsesGivenIcon(t *testing.T) {
	t.Parallel()

	out := Render(Error, labels.TrashIcon, "Label deleted")
	assert.Contains(t, out, labels.TrashIcon+" Label deleted")
}

func TestRenderStack(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderStack(nil))

	out := RenderStack([]state.Notification{
		{ID: 1, Level: state.LevelInfo, Message: "first"},
		{ID: 2, Level: state.LevelSuccess, Message: "second"},
	})
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "✓ second")
}
