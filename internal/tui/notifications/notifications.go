// Package notifications renders the one-line messages shown in the title bar
// after a board change or a refused command.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

type badge struct {
	icon       string
	foreground string
	background string
}

func badgeFor(level state.NotificationLevel) badge {
	switch level {
	case state.LevelError:
		return badge{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	case state.LevelDiscarded:
		return badge{icon: "▼", foreground: theme.Delete, background: theme.InfoBg}
	case state.LevelMoved:
		return badge{icon: "⇄", foreground: theme.Indicator, background: theme.InfoBg}
	default:
		return badge{icon: "●", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// Render draws n as an icon plus its message on one line
func Render(n state.Notification) string {
	b := badgeFor(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.foreground)).
		Background(lipgloss.Color(b.background)).
		Padding(0, 1).
		Render(b.icon + " " + n.Message)
}
