package config

import "github.com/thenoetrevino/notely/internal/config/colors"

// DefaultColorScheme is the "default" preset: purple accent, green create
// box, blue edit box and red delete confirmation.
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme is the "monochrome" preset for terminals without
// color. Modals are told apart by their titles only.
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
