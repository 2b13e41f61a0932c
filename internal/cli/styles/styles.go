// Package styles holds the lipgloss styles the CLI prints with. Init must
// run before any output is rendered.
package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/config/colors"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// CardWidth is the width of the box `show` draws around a card
const CardWidth = 80

var (
	CardStyle lipgloss.Style

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style // ids, keys, details
	LabelStyle    lipgloss.Style // "Priority:", "Due:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // "Description"

	// replay outcomes
	AppliedStyle lipgloss.Style
	IgnoredStyle lipgloss.Style
)

func Init(scheme colors.ColorScheme) {
	accent := lipgloss.Color(scheme.Accent)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle))
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal))
	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1)

	AppliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Create))
	IgnoredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)).Italic(true)
}

// ColoredText renders text in a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(text)
}

// BoldColoredText renders bold text in a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor)).Render(text)
}

// RenderPriority renders a priority flag in its display color
func RenderPriority(p models.Priority) string {
	return BoldColoredText("⚑ "+p.String(), p.Color())
}

// RenderColumnHeading renders "Backlog (4)" in the column's heading color
func RenderColumnHeading(col models.Column, count int) string {
	return BoldColoredText(fmt.Sprintf("%s (%d)", col.Title, count), col.HeadingColor.Swatch().Heading)
}

// RenderOutcome colors a replay step outcome: refused steps are muted,
// everything else counts as applied
func RenderOutcome(outcome string) string {
	if outcome == "ignored" {
		return IgnoredStyle.Render(outcome)
	}
	return AppliedStyle.Render(outcome)
}

// RenderCard wraps content in the card box
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
