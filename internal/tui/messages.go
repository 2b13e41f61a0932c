package tui

import "github.com/thenoetrevino/swimlane/internal/events"

// BoardEventMsg carries a board change event into the update loop
type BoardEventMsg struct {
	Event events.Event
}
