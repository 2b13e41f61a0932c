// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/config/colors"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (app header, dialog titles)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints and placeholders
	SubtleStyle lipgloss.Style

	// IndicatorStyle defines the highlighted drop indicator line
	IndicatorStyle lipgloss.Style

	// DiscardStyle defines the discard target while idle
	DiscardStyle lipgloss.Style

	// CreateBoxStyle defines the base style for creation dialogs (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle defines the base style for edit dialogs (blue border)
	EditBoxStyle lipgloss.Style

	// DetailBoxStyle defines the card detail view
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications (blue)
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages (red)
	ErrorBannerStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	// Widths are left unset: column and card lines are padded to the
	// layout widths before styling so boxes match the measured geometry.
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Indicator)).
		Bold(true)

	DiscardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.DiscardBorder)).
		Foreground(lipgloss.Color(scheme.Subtle)).
		Padding(0, 1)

	// Dialog box styles
	CreateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	EditBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Edit)).
		Padding(1, 2)

	// Banner styles for notifications
	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
}
