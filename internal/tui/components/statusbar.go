package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string // already styled
	Right string // already styled
}

// RenderStatusBar renders a status bar with left and right aligned content
func RenderStatusBar(props StatusBarProps) string {
	leftWidth := lipgloss.Width(props.Left)
	rightWidth := lipgloss.Width(props.Right)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return StatusBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, props.Left, gap, props.Right))
}

type TitleBarProps struct {
	Width        int
	Notification string // already styled, may be empty
	SearchQuery  string
	SearchMode   bool // the search prompt is open
}

// RenderTitleBar renders the one-row bar above the board: the app name, the
// search query when there is one, and the latest notification on the right
func RenderTitleBar(props TitleBarProps) string {
	left := TitleStyle.Render("swimlane")

	if props.SearchMode || props.SearchQuery != "" {
		query := "/" + props.SearchQuery
		if props.SearchMode {
			query += "_"
		}
		left += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Render(query)
	}

	return RenderStatusBar(StatusBarProps{
		Width: props.Width,
		Left:  left,
		Right: props.Notification,
	})
}
