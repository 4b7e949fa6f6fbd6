// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/notely/internal/config/colors"
	"github.com/thenoetrevino/notely/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the appearance of the screen title
	TitleStyle lipgloss.Style

	// ListBoxStyle frames the label list
	ListBoxStyle lipgloss.Style

	// RowStyle and SelectedRowStyle define label rows
	RowStyle         lipgloss.Style
	SelectedRowStyle lipgloss.Style

	// PlaceholderStyle is used for the empty list message
	PlaceholderStyle lipgloss.Style

	// AddButtonStyle defines the add label affordance
	AddButtonStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages (red)
	ErrorBannerStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	ListBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.RowBorder)).
		Padding(0, 1).
		Width(ListWidth)

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	AddButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Create)).
		Bold(true).
		Padding(0, 1)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Bold(true).
		Padding(0, 1)
}
