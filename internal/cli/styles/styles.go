// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/notely/internal/config/colors"
	"github.com/thenoetrevino/notely/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For label chips
	ValueStyle    lipgloss.Style // For note bodies and ids

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.SuccessFg)).
		Background(lipgloss.Color(scheme.SuccessBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)
}

// RenderLabelChip renders a label as "[name]"
func RenderLabelChip(label *models.Label) string {
	return LabelStyle.Render("[" + label.Name + "]")
}

// RenderLabelChips renders labels separated by spaces
func RenderLabelChips(labels []*models.Label) string {
	chips := make([]string, len(labels))
	for i, l := range labels {
		chips[i] = RenderLabelChip(l)
	}
	return strings.Join(chips, " ")
}

// RenderLabelRow renders one line of `notely label list`
func RenderLabelRow(label *models.Label) string {
	return fmt.Sprintf("  %s  %s", SubtitleStyle.Render(label.ID), ValueStyle.Render(label.Name))
}

// RenderNoteCard renders a note with its labels inside a bordered card
func RenderNoteCard(note *models.Note) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(note.Title))
	if len(note.Labels) > 0 {
		b.WriteString("  ")
		b.WriteString(RenderLabelChips(note.Labels))
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(note.ID))
	if body := strings.TrimSpace(note.Body); body != "" {
		b.WriteString("\n\n")
		b.WriteString(ValueStyle.Render(body))
	}
	return CardStyle.Render(b.String())
}

// Success renders a one-line success message
func Success(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}
