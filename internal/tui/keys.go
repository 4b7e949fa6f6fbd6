package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/labels"
)

const keyHelpPrefix = "screens.labelManage.keys."

// keyMap holds the label screen bindings built from the configured key mappings
type keyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings, tr labels.Localizer) keyMap {
	desc := func(name string) string {
		return tr.T(keyHelpPrefix+name, nil)
	}
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys(km.AddLabel),
			key.WithHelp(km.AddLabel, desc("add")),
		),
		Edit: key.NewBinding(
			key.WithKeys(km.EditLabel, "e"),
			key.WithHelp(km.EditLabel, desc("edit")),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.DeleteLabel),
			key.WithHelp(km.DeleteLabel, desc("delete")),
		),
		Up: key.NewBinding(
			key.WithKeys(km.PrevLabel, "up"),
			key.WithHelp(km.PrevLabel+"/↑", desc("up")),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextLabel, "down"),
			key.WithHelp(km.NextLabel+"/↓", desc("down")),
		),
		Confirm: key.NewBinding(
			key.WithKeys(km.Confirm),
			key.WithHelp(km.Confirm, desc("confirm")),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.Cancel),
			key.WithHelp(km.Cancel, desc("cancel")),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, desc("help")),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, desc("quit")),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete},
		{k.Up, k.Down},
		{k.Confirm, k.Cancel},
		{k.Help, k.Quit},
	}
}
