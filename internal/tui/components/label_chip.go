package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/notely/internal/models"
)

// RenderLabelRow renders one row of the label list
func RenderLabelRow(label *models.Label, selected bool) string {
	name := truncate.StringWithTail(label.Name, labelNameMaxCols, "…")
	if selected {
		return SelectedRowStyle.Render(bulletSelected + name)
	}
	return RowStyle.Render(bulletIdle + name)
}

// RenderLabelList renders labels in order with the selected row highlighted.
// An empty slice renders the placeholder instead.
func RenderLabelList(title string, labels []*models.Label, selected int, placeholder string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	if len(labels) == 0 {
		b.WriteString(PlaceholderStyle.Render(placeholder))
	} else {
		rows := make([]string, len(labels))
		for i, label := range labels {
			rows[i] = RenderLabelRow(label, i == selected)
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	return ListBoxStyle.Render(b.String())
}

// RenderAddButton renders the add affordance shown below the list
func RenderAddButton(text string) string {
	return AddButtonStyle.Render("+ " + text)
}
