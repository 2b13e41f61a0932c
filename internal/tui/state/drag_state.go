package state

import "github.com/thenoetrevino/swimlane/internal/types"

// Target is what the pointer is over during a drag
type Target struct {
	Column  types.ColumnKey // set when over a column
	Discard bool            // set when over the discard target
}

// None reports whether the pointer is over nothing droppable
func (t Target) None() bool {
	return t.Column == "" && !t.Discard
}

// DragState tracks the pointer during a mouse drag. Which card is dragged
// and which slot is lit live in the board controller's drag session; this
// only records what the terminal reported.
type DragState struct {
	// X and Y are the last pointer cell
	X, Y int

	// Target is what the pointer was over at the last event
	Target Target
}

// NewDragState creates an empty DragState
func NewDragState() *DragState {
	return &DragState{}
}

// Move records a new pointer position
func (s *DragState) Move(x, y int) {
	s.X = x
	s.Y = y
}

// Reset forgets the target after a drag ends
func (s *DragState) Reset() {
	s.Target = Target{}
}
