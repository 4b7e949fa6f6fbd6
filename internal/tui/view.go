package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/tui/components"
	"github.com/thenoetrevino/notely/internal/tui/notifications"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

// View implements tea.Model
func (m Model) View() string {
	var sections []string

	if toasts := notifications.RenderStack(m.notificationState.All()); toasts != "" {
		sections = append(sections, m.alignRight(toasts))
	}

	sections = append(sections, components.RenderLabelList(
		m.t(keyScreenTitle, nil),
		m.listState.Labels(),
		m.listState.SelectedRow(),
		m.t(keyNoLabels, nil),
	))

	if m.ctrl.State().CanAdd() {
		sections = append(sections, components.RenderAddButton(m.t(keyAddButton, nil)))
	}

	switch m.uiState.Mode() {
	case state.LabelFormMode:
		sections = append(sections, m.renderLabelForm())
	case state.DeleteConfirmMode:
		sections = append(sections, components.DeleteConfirmBoxStyle.Render(m.formState.form.View()))
	case state.HelpMode:
		m.help.ShowAll = true
		sections = append(sections, components.HelpBoxStyle.Render(m.help.View(m.keys)))
	}

	if m.errorMessage != "" {
		sections = append(sections, components.ErrorBannerStyle.Render(m.errorMessage))
	}

	if m.uiState.Mode() != state.HelpMode {
		m.help.ShowAll = false
		sections = append(sections, m.help.View(m.keys))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderLabelForm() string {
	box := components.EditInputBoxStyle
	if m.ctrl.State().Visible == labels.ModalEditOrCreate && m.ctrl.State().IsCreate() {
		box = components.CreateInputBoxStyle
	}
	return box.Render(m.formState.form.View())
}

func (m Model) alignRight(s string) string {
	width := m.uiState.Width()
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}
