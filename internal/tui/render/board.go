package render

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layers"
	"github.com/thenoetrevino/swimlane/internal/tui/notifications"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// getInlineNotification returns the latest notification for the title bar,
// or an empty string when there is none
func getInlineNotification(m *tui.Model) string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	return notifications.Render(n)
}

// BoardLayers renders the title bar, every column at its measured position,
// the discard target and the status bar
func BoardLayers(m *tui.Model) []*lipgloss.Layer {
	width := m.UiState.Width()

	titleBar := components.RenderTitleBar(components.TitleBarProps{
		Width:        width,
		Notification: getInlineNotification(m),
		SearchQuery:  m.SearchState.Query,
		SearchMode:   m.UiState.Mode() == state.SearchMode,
	})
	result := []*lipgloss.Layer{lipgloss.NewLayer(titleBar)}

	cards := make(map[types.CardID]models.Card)
	for _, c := range m.App.Cards() {
		cards[c.ID] = c
	}

	dragging, isDragging := m.App.Dragging()
	var highlight *slots.Slot
	if slot, ok := m.App.Highlight(); ok {
		highlight = &slot
	}

	var dimmed func(types.CardID) bool
	if m.SearchState.Filtering() {
		dimmed = m.SearchState.Dimmed
	}

	for _, box := range m.Geometry.Columns {
		column := components.RenderColumn(components.ColumnProps{
			Box:          box,
			Cards:        cards,
			Highlight:    highlight,
			DropTarget:   isDragging && m.DragState.Target.Column == box.Column.Key,
			FocusedCard:  m.UiState.FocusedCard(),
			DraggingCard: dragging,
			Dimmed:       dimmed,
		})
		result = append(result, lipgloss.NewLayer(column).X(box.Box.X).Y(box.Box.Y))
	}

	discard := components.RenderDiscard(isDragging, m.App.OverDiscard())
	result = append(result, lipgloss.NewLayer(discard).X(m.Geometry.Discard.X).Y(m.Geometry.Discard.Y))

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  help.New().ShortHelpView(m.Keys.ShortHelp()),
		Right: components.SubtleStyle.Render(boardSummary(m)),
	})
	result = append(result, lipgloss.NewLayer(statusBar).Y(max(m.UiState.Height()-1, 0)))

	return result
}

// boardSummary counts the board's cards and columns for the status bar
func boardSummary(m *tui.Model) string {
	b := m.App.Board()
	return fmt.Sprintf("%s in %s", pluralize(b.Len(), "card"), pluralize(len(b.Columns()), "column"))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// RenderDragLayer renders a copy of the dragged card next to the pointer
func RenderDragLayer(m *tui.Model) *lipgloss.Layer {
	id, ok := m.App.Dragging()
	if !ok {
		return nil
	}
	card, ok := m.App.Card(id)
	if !ok {
		return nil
	}

	ghost := components.RenderGhostCard(card)
	return layers.CreatePointerLayer(ghost, m.DragState.X, m.DragState.Y, m.UiState.Width(), m.UiState.Height())
}
