// Package tui implements the label management screen.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/tui/components"
	"github.com/thenoetrevino/notely/internal/tui/huhforms"
	"github.com/thenoetrevino/notely/internal/tui/notifications"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

// Translation keys used by the screen
const (
	keyScreenTitle   = "components.drawer.manageLabels"
	keyNoLabels      = "screens.labelManage.noLabelsFound"
	keyAddButton     = "screens.labelManage.addButtonA11yLabel"
	keyPlaceholder   = "screens.labelManage.inputModal.inputPlaceholder"
	keyDeleteMessage = "screens.labelManage.deleteLabelMessage"
	keyDelete        = "common.delete"
	keyCancel        = "common.cancel"
)

// formState holds the open huh form and the values it writes to
type formState struct {
	form      *huh.Form
	name      string
	confirmed bool
}

// Model represents the label management screen
type Model struct {
	ctx    context.Context
	ctrl   *labels.Controller
	i18n   labels.Localizer
	config *config.Config
	keys   keyMap
	help   help.Model

	uiState           *state.UIState
	listState         *state.ListViewState
	notificationState *state.NotificationState
	formState         *formState

	// errorMessage is shown above the help line until the next key press
	errorMessage string
}

// New creates the label screen backed by store. Labels are loaded immediately.
func New(ctx context.Context, store labels.Store, tr labels.Localizer, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	notificationState := state.NewNotificationState()
	notifier := labels.NotifierFunc(func(n labels.Notification) {
		notificationState.Add(notifications.FromStyle(n.Style).Level(), n.Icon, n.Message)
	})

	m := Model{
		ctx:               ctx,
		ctrl:              labels.NewController(store, labels.UUIDGenerator, notifier, tr),
		i18n:              tr,
		config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings, tr),
		help:              help.New(),
		uiState:           state.NewUIState(),
		listState:         state.NewListViewState(),
		notificationState: notificationState,
	}
	m.reloadLabels()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the screen controller
func (m Model) Controller() *labels.Controller {
	return m.ctrl
}

// Run starts the label screen and blocks until the user quits.
// The modal state is reset when the screen closes.
func Run(ctx context.Context, store labels.Store, tr labels.Localizer, cfg *config.Config) error {
	m := New(ctx, store, tr, cfg)
	defer m.ctrl.Reset()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m *Model) reloadLabels() {
	all, err := m.ctrl.Labels(m.ctx)
	if err != nil {
		slog.Error("failed to load labels", "error", err)
		m.errorMessage = err.Error()
		return
	}
	m.listState.SetLabels(all)
}

func (m Model) t(key string, params map[string]any) string {
	return m.i18n.T(key, params)
}

func (m *Model) openLabelForm(name string) tea.Cmd {
	fs := &formState{name: name}
	fs.form = huhforms.CreateLabelForm(huhforms.LabelFormText{
		Title:       m.ctrl.ModalTitle(),
		Placeholder: m.t(keyPlaceholder, nil),
	}, &fs.name, m.validateName).
		WithTheme(huhforms.CreateNotelyTheme(m.config.ColorScheme))
	m.formState = fs
	m.uiState.SetMode(state.LabelFormMode)
	return fs.form.Init()
}

func (m *Model) openDeleteForm() tea.Cmd {
	target := m.ctrl.State().Target
	fs := &formState{}
	fs.form = huhforms.CreateDeleteLabelForm(huhforms.LabelFormText{
		Title:       m.t(keyDelete, nil),
		Description: m.t(keyDeleteMessage, map[string]any{"Name": target.Name}),
		Affirmative: m.t(keyDelete, nil),
		Negative:    m.t(keyCancel, nil),
	}, &fs.confirmed).
		WithTheme(huhforms.CreateNotelyTheme(m.config.ColorScheme))
	m.formState = fs
	m.uiState.SetMode(state.DeleteConfirmMode)
	return fs.form.Init()
}

// validateName is the huh validator for the name field
func (m Model) validateName(raw string) error {
	res, err := m.ctrl.Validate(m.ctx, raw)
	if err != nil {
		return err
	}
	if !res.OK() {
		return &fieldError{msg: m.t(res.MessageKey(), nil), cause: res.Err()}
	}
	return nil
}

// fieldError carries the localized message while still matching the validation sentinel
type fieldError struct {
	msg   string
	cause error
}

func (e *fieldError) Error() string { return e.msg }
func (e *fieldError) Unwrap() error { return e.cause }
