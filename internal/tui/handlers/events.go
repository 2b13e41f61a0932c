package handlers

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// HandleBoardEvent refreshes the layout after a board change and shows
// what changed in the title bar
func HandleBoardEvent(m *tui.Model, e events.Event) {
	m.Relayout()
	if m.SearchState.Filtering() {
		m.SearchState.Recompute(m.App.Cards())
	}

	m.NotificationState.Clear()
	m.NotificationState.Add(levelFor(e.Type), describeEvent(m, e))
}

func levelFor(t events.EventType) state.NotificationLevel {
	switch t {
	case events.EventCardMoved:
		return state.LevelMoved
	case events.EventCardRemoved:
		return state.LevelDiscarded
	default:
		return state.LevelInfo
	}
}

// describeEvent turns an event into a short human message
func describeEvent(m *tui.Model, e events.Event) string {
	title := string(e.CardID)
	if card, ok := m.App.Card(e.CardID); ok {
		title = card.Title
	}

	columnTitle := string(e.Column)
	if col, ok := m.App.Board().Column(e.Column); ok {
		columnTitle = col.Title
	}

	switch e.Type {
	case events.EventCardAdded:
		return fmt.Sprintf("Added %q to %s", title, columnTitle)
	case events.EventCardRemoved:
		return fmt.Sprintf("Discarded card #%s", e.CardID)
	case events.EventCardMoved:
		return fmt.Sprintf("Moved %q to %s", title, columnTitle)
	case events.EventCardUpdated:
		return fmt.Sprintf("Updated %s of %q", strings.ReplaceAll(e.Field, "_", " "), title)
	case events.EventColumnAdded:
		return fmt.Sprintf("Added column %s", columnTitle)
	default:
		return string(e.Type)
	}
}
