package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ColumnProps describes how to draw one column
type ColumnProps struct {
	Box   layout.ColumnBox
	Cards map[types.CardID]models.Card

	// Highlight is the drop slot to light up; only used when it belongs to this column
	Highlight    *slots.Slot
	DropTarget   bool // the pointer is over this column during a drag
	FocusedCard  types.CardID
	DraggingCard types.CardID

	// Dimmed reports whether a card is filtered out by the search (nil: none are)
	Dimmed func(types.CardID) bool
}

// RenderColumn renders a complete column with its heading and cards.
// Rows follow the measured layout exactly:
//
//	{Title} ({count})
//	{indicator}
//	{Card 1}
//	{indicator}
//	{Card 2}
//	{trailing indicator}
//	+ Add card
func RenderColumn(props ColumnProps) string {
	box := props.Box
	lines := make([]string, 0, box.ContentRows())

	lines = append(lines, renderColumnHeading(box.Column, len(box.Cards)))

	for _, cb := range box.Cards {
		lines = append(lines, renderIndicator(props.highlighted(cb.ID)))

		card := props.Cards[cb.ID]
		rendered := RenderCard(CardProps{
			Card:     card,
			Title:    cb.Title,
			Focused:  cb.ID == props.FocusedCard,
			Dragging: cb.ID == props.DraggingCard,
			Dimmed:   props.Dimmed != nil && props.Dimmed(cb.ID),
		})
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	lines = append(lines, renderIndicator(props.highlighted(types.EndOfColumn)))
	lines = append(lines, SubtleStyle.Render(FitWidth("+ Add card", layout.ColumnInnerWidth)))

	for len(lines) < box.ContentRows() {
		lines = append(lines, strings.Repeat(" ", layout.ColumnInnerWidth))
	}

	style := ColumnStyle
	if props.DropTarget {
		style = style.BorderForeground(lipgloss.Color(theme.Indicator))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// highlighted reports whether the slot before id is the one to light up
func (p ColumnProps) highlighted(id types.CardID) bool {
	return p.Highlight != nil &&
		p.Highlight.Column == p.Box.Column.Key &&
		p.Highlight.BeforeID == id
}

// renderColumnHeading renders "Title (count)" in the column's heading color
func renderColumnHeading(col models.Column, count int) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(col.HeadingColor.Swatch().Heading)).
		Render(fmt.Sprintf("%s (%d)", col.Title, count))
	return FitWidth(heading, layout.ColumnInnerWidth)
}

// renderIndicator renders the one-row drop indicator, blank unless lit
func renderIndicator(lit bool) string {
	if !lit {
		return strings.Repeat(" ", layout.ColumnInnerWidth)
	}
	return IndicatorStyle.Render(strings.Repeat("━", layout.ColumnInnerWidth))
}

// RenderDiscard renders the discard target. It turns red while a dragged
// card hovers over it.
func RenderDiscard(dragging, hovered bool) string {
	label := "✕ Discard"
	hint := "drop a card here"
	if hovered {
		hint = "release to delete"
	}

	lines := []string{
		FitWidth(label, layout.DiscardInnerWidth),
		"",
		FitWidth(hint, layout.DiscardInnerWidth),
	}
	for len(lines) < layout.DiscardHeight-2 {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = FitWidth(lines[i], layout.DiscardInnerWidth)
	}

	style := DiscardStyle
	switch {
	case hovered:
		style = style.
			BorderForeground(lipgloss.Color(theme.Delete)).
			Foreground(lipgloss.Color(theme.Delete)).
			Bold(true)
	case dragging:
		style = style.Foreground(lipgloss.Color(theme.Normal))
	}
	return style.Render(strings.Join(lines, "\n"))
}
