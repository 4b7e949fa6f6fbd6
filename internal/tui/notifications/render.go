package notifications

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

// Render renders a toast. An empty icon uses the severity's default icon.
func Render(severity Severity, icon, message string) string {
	style := severity.style()
	if icon == "" {
		icon = style.icon
	}

	content := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Render(icon + " " + message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a toast from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(fromLevel(n.Level), n.Icon, n.Message)
}

// RenderStack renders every notification stacked vertically, right aligned
func RenderStack(ns []state.Notification) string {
	if len(ns) == 0 {
		return ""
	}
	views := make([]string, len(ns))
	for i, n := range ns {
		views[i] = RenderFromState(n)
	}
	return lipgloss.JoinVertical(lipgloss.Right, views...)
}
