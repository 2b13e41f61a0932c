package drag

import "errors"

// Drag protocol errors. They report events that arrived in an order the
// session cannot act on; none of them change board state.
var (
	ErrNotDragging     = errors.New("no drag in progress")
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrEmptyCardID     = errors.New("drag started without a card")
	ErrNoSlots         = errors.New("column has no registered slots")
)
