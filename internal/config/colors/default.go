package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#E53935",

		// List
		RowBorder:  "#585858",
		SelectedFg: "#FFFFFF",
		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Toasts
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		SuccessFg: "#5FD75F",
		SuccessBg: "#005F00",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#E57373",
	}
}
