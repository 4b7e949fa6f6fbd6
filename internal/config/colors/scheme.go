package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Create label dialog
	Edit   string `yaml:"edit"`   // Edit label dialog
	Delete string `yaml:"delete"` // Delete confirmation and trash icon

	// List colors
	RowBorder  string `yaml:"row_border"`
	SelectedFg string `yaml:"selected_fg"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Toast colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset, false)
}

// MergeFrom copies colors from other. With override set every non-empty
// color in other wins; otherwise only empty colors in c are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	fields := []struct {
		dst *string
		src string
	}{
		{&c.Accent, other.Accent},
		{&c.Create, other.Create},
		{&c.Edit, other.Edit},
		{&c.Delete, other.Delete},
		{&c.RowBorder, other.RowBorder},
		{&c.SelectedFg, other.SelectedFg},
		{&c.SelectedBg, other.SelectedBg},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.InfoFg, other.InfoFg},
		{&c.InfoBg, other.InfoBg},
		{&c.SuccessFg, other.SuccessFg},
		{&c.SuccessBg, other.SuccessBg},
		{&c.ErrorFg, other.ErrorFg},
		{&c.ErrorBg, other.ErrorBg},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		if override || *f.dst == "" {
			*f.dst = f.src
		}
	}
}
