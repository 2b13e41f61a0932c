package events

import (
	"time"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCardAdded   EventType = "card_added"
	EventCardRemoved EventType = "card_removed"
	EventCardMoved   EventType = "card_moved"
	EventCardUpdated EventType = "card_updated"
	EventColumnAdded EventType = "column_added"
)

// Event is a notification that the board changed. It is only published for
// mutations that actually took effect; rejected or redundant commands are silent.
type Event struct {
	Type       EventType       `json:"type"`
	CardID     types.CardID    `json:"card_id,omitempty"`
	Column     types.ColumnKey `json:"column,omitempty"`
	BeforeID   types.CardID    `json:"before_id,omitempty"` // Insertion point of a move
	Field      string          `json:"field,omitempty"`     // Edited field of an update
	Timestamp  time.Time       `json:"timestamp"`           // When the event occurred
	SequenceID int64           `json:"sequence_id"`         // Monotonically increasing sequence number for ordering
}
