package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// CreateLabelKeyMap returns the default huh keymap with esc aborting the form
// in addition to ctrl+c.
func CreateLabelKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)

	return keymap
}
