package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

// notificationExpiredMsg removes a toast once its time is up
type notificationExpiredMsg struct {
	id int
}

func expireNotification(id int) tea.Cmd {
	return tea.Tick(state.DefaultNotificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case notificationExpiredMsg:
		m.notificationState.Remove(msg.id)
		return m, nil

	case tea.KeyMsg:
		m.errorMessage = ""
		switch m.uiState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.LabelFormMode:
			return m.handleLabelFormMode(msg)
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirmMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	if m.formState != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Reset()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Cancel):
		m.notificationState.Clear()
	case key.Matches(msg, m.keys.Up):
		m.listState.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.listState.MoveDown()
	case key.Matches(msg, m.keys.Add):
		if !m.ctrl.State().CanAdd() {
			return m, nil
		}
		m.ctrl.ShowCreateLabelModal()
		cmd := m.openLabelForm("")
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		selected := m.listState.Selected()
		if selected == nil {
			return m, nil
		}
		m.ctrl.ShowEditLabelModal(selected)
		cmd := m.openLabelForm(selected.Name)
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		selected := m.listState.Selected()
		if selected == nil {
			return m, nil
		}
		m.ctrl.ShowDeleteLabelModal(selected)
		cmd := m.openDeleteForm()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help, m.keys.Quit, m.keys.Cancel):
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleLabelFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) || msg.Type == tea.KeyCtrlC {
		return m.dismissModal(), nil
	}
	return m.updateForm(msg)
}

func (m Model) handleDeleteConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel) || msg.Type == tea.KeyCtrlC || msg.String() == "n":
		return m.dismissModal(), nil
	case key.Matches(msg, m.keys.Confirm):
		m.formState.confirmed = true
		return m.finishDelete()
	}
	return m.updateForm(msg)
}

// updateForm forwards msg to the open huh form and reacts to it finishing.
// Commands from a finished form are dropped so it cannot quit the program.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fm, cmd := m.formState.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.formState.form = f
	}

	switch m.formState.form.State {
	case huh.StateCompleted:
		if m.uiState.Mode() == state.DeleteConfirmMode {
			return m.finishDelete()
		}
		return m.submitLabel(m.formState.name)
	case huh.StateAborted:
		return m.dismissModal(), nil
	}
	return m, cmd
}

// submitLabel saves the name typed into the edit or create form
func (m Model) submitLabel(name string) (tea.Model, tea.Cmd) {
	res, err := m.ctrl.SaveLabel(m.ctx, name)
	if err != nil {
		m.errorMessage = err.Error()
		cmd := m.openLabelForm(name)
		return m, cmd
	}
	if !res.OK() {
		m.errorMessage = m.t(res.MessageKey(), nil)
		cmd := m.openLabelForm(name)
		return m, cmd
	}

	m.closeForm()
	m.reloadLabels()
	return m, nil
}

// finishDelete deletes the target label once the user confirmed
func (m Model) finishDelete() (tea.Model, tea.Cmd) {
	if !m.formState.confirmed {
		return m.dismissModal(), nil
	}

	before := m.notificationState.LastID()
	if err := m.ctrl.DeleteConfirm(m.ctx); err != nil {
		m.errorMessage = err.Error()
		cmd := m.openDeleteForm()
		return m, cmd
	}

	m.closeForm()
	m.reloadLabels()
	if id := m.notificationState.LastID(); id != before {
		return m, expireNotification(id)
	}
	return m, nil
}

func (m Model) dismissModal() Model {
	m.ctrl.ModalDismiss()
	m.closeForm()
	return m
}

func (m *Model) closeForm() {
	m.formState = nil
	m.uiState.SetMode(state.NormalMode)
}
