package notifications

import "github.com/thenoetrevino/notely/internal/tui/theme"

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Success:
		return style{
			icon:       "✓",
			foreground: theme.SuccessFg,
			background: theme.SuccessBg,
		}
	case Error:
		return style{
			icon:       "✕",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "🔔",
			foreground: theme.InfoFg,
			background: theme.InfoBg,
		}
	}
}
