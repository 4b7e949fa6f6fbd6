package notifications

import (
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/tui/state"
)

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// FromStyle maps a controller notification style to a severity
func FromStyle(s labels.NotificationStyle) Severity {
	switch s {
	case labels.StyleSuccess:
		return Success
	case labels.StyleError:
		return Error
	default:
		return Info
	}
}

// Level returns the state level matching s
func (s Severity) Level() state.NotificationLevel {
	switch s {
	case Success:
		return state.LevelSuccess
	case Error:
		return state.LevelError
	default:
		return state.LevelInfo
	}
}

func fromLevel(l state.NotificationLevel) Severity {
	switch l {
	case state.LevelSuccess:
		return Success
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
