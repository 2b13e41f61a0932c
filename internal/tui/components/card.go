package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// CardProps describes how to draw one card
type CardProps struct {
	Card     models.Card
	Title    []string // title already wrapped to layout.CardTextWidth
	Focused  bool     // under the pointer or selected with the keyboard
	Dragging bool     // the card being dragged
	Dimmed   bool     // filtered out by the search
}

// RenderCard renders a single card as a bordered box
//
//	╭──────────────────────╮
//	│ {Title}              │
//	│ ⚑ High   2024-05-01  │
//	│ Tejas, Suraj, Jane   │
//	╰──────────────────────╯
//
// Every line is padded to the card text width, so the box always has the
// width and height the layout measured.
func RenderCard(props CardProps) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal))
	if props.Dimmed {
		titleStyle = titleStyle.Bold(false).Foreground(lipgloss.Color(theme.Subtle))
	}

	lines := make([]string, 0, len(props.Title)+layout.CardMetaRows)
	for _, line := range props.Title {
		lines = append(lines, titleStyle.Render(FitWidth(line, layout.CardTextWidth)))
	}
	lines = append(lines, renderCardMeta(props.Card), renderCardAssignees(props.Card))

	style := CardStyle
	switch {
	case props.Dragging:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder)).Faint(true)
	case props.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.Accent))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// RenderGhostCard renders the copy of a dragged card that follows the pointer
func RenderGhostCard(card models.Card) string {
	return RenderCard(CardProps{
		Card:    card,
		Title:   layout.WrapTitle(card.Title),
		Focused: true,
	})
}

// renderCardMeta renders the priority flag and the due date on one line
func renderCardMeta(card models.Card) string {
	flag := priorityFlag(card.Priority)

	due := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(card.DueLabel())

	gap := max(layout.CardTextWidth-lipgloss.Width(flag)-lipgloss.Width(due), 1)
	return FitWidth(flag+strings.Repeat(" ", gap)+due, layout.CardTextWidth)
}

// priorityFlag renders "⚑ Name" in the priority's color
func priorityFlag(p models.Priority) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color())).Render("⚑ " + p.String())
}

// renderCardAssignees renders the assignees joined with ", " or "-" when there are none
func renderCardAssignees(card models.Card) string {
	text := "-"
	if len(card.Assignees) > 0 {
		text = strings.Join(card.Assignees, ", ")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true)
	return style.Render(FitWidth(text, layout.CardTextWidth))
}

// FitWidth pads s with spaces, or truncates it with an ellipsis, so it is
// exactly width cells wide
func FitWidth(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		s = truncate.StringWithTail(s, uint(width), "…")
		w = lipgloss.Width(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
