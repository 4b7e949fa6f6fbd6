package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/notely/internal/models"
)

func TestRenderNoteCard(t *testing.T) {
	note := &models.Note{
		ID:     "n1",
		Title:  "Standup",
		Body:   "yesterday, today",
		Labels: []*models.Label{{ID: "l1", Name: "Work"}, {ID: "l2", Name: "Daily"}},
	}

	out := RenderNoteCard(note)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "[Work] [Daily]")
	assert.Contains(t, out, "yesterday, today")
}

func TestRenderLabelRow(t *testing.T) {
	out := RenderLabelRow(&models.Label{ID: "l1", Name: "Work"})
	assert.Contains(t, out, "l1")
	assert.Contains(t, out, "Work")
}
