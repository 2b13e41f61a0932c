package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Card represents a single task on the board.
// Cards are values: the board copies them on every change, so a Card held by
// a caller never changes underneath it.
type Card struct {
	ID          types.CardID
	Title       string
	Column      types.ColumnKey
	Priority    Priority
	Assignees   []string
	DueDate     *time.Time
	Description string
	Status      string
	Lead        string
}

// Clone returns a deep copy of the card so slice and pointer fields are not shared
func (c Card) Clone() Card {
	out := c
	if c.Assignees != nil {
		out.Assignees = slices.Clone(c.Assignees)
	}
	if c.DueDate != nil {
		d := *c.DueDate
		out.DueDate = &d
	}
	return out
}

// HasDueDate returns true if the card has a due date set
func (c Card) HasDueDate() bool {
	return c.DueDate != nil
}

// DueLabel formats the due date for display, or "-" when unset
func (c Card) DueLabel() string {
	if c.DueDate == nil {
		return "-"
	}
	return c.DueDate.Format(DateLayout)
}

// GetID returns the card id as a string (used by quiet CLI output)
func (c Card) GetID() string {
	return string(c.ID)
}
