package theme

import "github.com/thenoetrevino/notely/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Subtle     string
	Normal     string
	Create     string
	Edit       string
	Delete     string
	RowBorder  string
	SelectedFg string
	SelectedBg string
	InfoFg     string
	InfoBg     string
	SuccessFg  string
	SuccessBg  string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	RowBorder = scheme.RowBorder
	SelectedFg = scheme.SelectedFg
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	SuccessFg = scheme.SuccessFg
	SuccessBg = scheme.SuccessBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
