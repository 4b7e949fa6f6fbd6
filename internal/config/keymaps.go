package config

// KeyMappings defines the configurable key bindings of the label screen
type KeyMappings struct {
	// Labels
	AddLabel    string `yaml:"add_label"`
	EditLabel   string `yaml:"edit_label"`
	DeleteLabel string `yaml:"delete_label"`

	// Navigation
	PrevLabel string `yaml:"prev_label"`
	NextLabel string `yaml:"next_label"`

	// Modals
	Confirm string `yaml:"confirm"`
	Cancel  string `yaml:"cancel"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddLabel:    "a",
		EditLabel:   "enter",
		DeleteLabel: "d",

		PrevLabel: "k",
		NextLabel: "j",

		Confirm: "y",
		Cancel:  "esc",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&k.AddLabel, defaults.AddLabel)
	fill(&k.EditLabel, defaults.EditLabel)
	fill(&k.DeleteLabel, defaults.DeleteLabel)
	fill(&k.PrevLabel, defaults.PrevLabel)
	fill(&k.NextLabel, defaults.NextLabel)
	fill(&k.Confirm, defaults.Confirm)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
