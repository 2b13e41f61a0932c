package drag

import (
	"fmt"

	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// State is the phase of a drag gesture
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Locator resolves a pointer coordinate to the nearest slot of a column
type Locator interface {
	Locate(column types.ColumnKey, y float64) (slots.Slot, bool)
}

// Committer applies the result of a drop to the board
type Committer interface {
	MoveCard(id, beforeID types.CardID, column types.ColumnKey) error
	RemoveCard(id types.CardID) error
}

// OutcomeKind says how a gesture ended
type OutcomeKind int

const (
	// OutcomeMoved means the card was moved to the dropped slot
	OutcomeMoved OutcomeKind = iota
	// OutcomeDiscarded means the card was dropped on the discard target and removed
	OutcomeDiscarded
	// OutcomeUnchanged means the drop was committed but the board rejected it as a no-op
	OutcomeUnchanged
	// OutcomeCancelled means the drag ended without a drop
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome describes a finished gesture
type Outcome struct {
	Kind     OutcomeKind
	CardID   types.CardID
	Column   types.ColumnKey
	BeforeID types.CardID
	Err      error // Error returned by the committer, if any
}

// Session tracks one drag gesture at a time, from drag-start until drop or
// cancel. The highlighted slot is display-only; the board changes only when
// Drop or DropDiscard hands the gesture to a Committer.
//
// Session is not safe for concurrent use. The board controller serializes access.
type Session struct {
	locator     Locator
	state       State
	cardID      types.CardID
	highlight   *slots.Slot
	overDiscard bool
}

// NewSession creates an idle session resolving pointers through locator
func NewSession(locator Locator) *Session {
	return &Session{locator: locator}
}

// State returns the current phase
func (s *Session) State() State {
	return s.state
}

// CardID returns the dragged card, if a drag is in progress
func (s *Session) CardID() (types.CardID, bool) {
	return s.cardID, s.state == Dragging
}

// Highlight returns the currently highlighted slot
func (s *Session) Highlight() (slots.Slot, bool) {
	if s.highlight == nil {
		return slots.Slot{}, false
	}
	return *s.highlight, true
}

// OverDiscard reports whether the pointer is over the discard target
func (s *Session) OverDiscard() bool {
	return s.overDiscard
}

// Start begins dragging the card
func (s *Session) Start(id types.CardID) error {
	if s.state == Dragging {
		return ErrAlreadyDragging
	}
	if id == "" || id.IsEnd() {
		return ErrEmptyCardID
	}
	s.state = Dragging
	s.cardID = id
	s.highlight = nil
	s.overDiscard = false
	return nil
}

// Over re-resolves the highlighted slot for a pointer at y over column
func (s *Session) Over(column types.ColumnKey, y float64) (slots.Slot, error) {
	if s.state != Dragging {
		return slots.Slot{}, ErrNotDragging
	}
	s.overDiscard = false

	slot, ok := s.locator.Locate(column, y)
	if !ok {
		s.highlight = nil
		return slots.Slot{}, fmt.Errorf("%w: %s", ErrNoSlots, column)
	}
	s.highlight = &slot
	return slot, nil
}

// Leave clears the highlight if it belongs to column. The drag continues.
func (s *Session) Leave(column types.ColumnKey) error {
	if s.state != Dragging {
		return ErrNotDragging
	}
	if s.highlight != nil && s.highlight.Column == column {
		s.highlight = nil
	}
	return nil
}

// EnterDiscard marks the pointer as over the discard target
func (s *Session) EnterDiscard() error {
	if s.state != Dragging {
		return ErrNotDragging
	}
	s.highlight = nil
	s.overDiscard = true
	return nil
}

// LeaveDiscard marks the pointer as no longer over the discard target
func (s *Session) LeaveDiscard() error {
	if s.state != Dragging {
		return ErrNotDragging
	}
	s.overDiscard = false
	return nil
}

// Drop commits the gesture into column at the highlighted slot. With no
// highlight in that column the card goes to the end of the column.
// The session is idle afterwards whatever the committer returns.
func (s *Session) Drop(column types.ColumnKey, c Committer) (Outcome, error) {
	if s.state != Dragging {
		return Outcome{}, ErrNotDragging
	}

	before := types.EndOfColumn
	if s.highlight != nil && s.highlight.Column == column {
		before = s.highlight.BeforeID
	}

	out := Outcome{Kind: OutcomeMoved, CardID: s.cardID, Column: column, BeforeID: before}
	s.reset()

	if err := c.MoveCard(out.CardID, before, column); err != nil {
		out.Kind = OutcomeUnchanged
		out.Err = err
	}
	return out, nil
}

// DropDiscard removes the dragged card through the committer
func (s *Session) DropDiscard(c Committer) (Outcome, error) {
	if s.state != Dragging {
		return Outcome{}, ErrNotDragging
	}

	out := Outcome{Kind: OutcomeDiscarded, CardID: s.cardID}
	s.reset()

	if err := c.RemoveCard(out.CardID); err != nil {
		out.Kind = OutcomeUnchanged
		out.Err = err
	}
	return out, nil
}

// End finishes the gesture without a drop. Ending an idle session is a no-op
// and reports false, since drag-end also follows every drop.
func (s *Session) End() (Outcome, bool) {
	if s.state != Dragging {
		return Outcome{}, false
	}
	out := Outcome{Kind: OutcomeCancelled, CardID: s.cardID}
	s.reset()
	return out, true
}

func (s *Session) reset() {
	s.state = Idle
	s.cardID = ""
	s.highlight = nil
	s.overDiscard = false
}
