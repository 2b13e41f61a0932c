package board

import "errors"

// Board operation errors. An operation that returns one of these leaves the
// board unchanged, so callers may treat them as silent no-ops.
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title cannot exceed 255 characters")
	ErrUnknownField  = errors.New("unknown card field")
	ErrInvalidCardID = errors.New("invalid card ID")

	// Lookup errors
	ErrCardNotFound   = errors.New("card not found")
	ErrColumnNotFound = errors.New("column not found")

	// Business logic errors
	ErrDuplicateColumn = errors.New("column key already exists")
	ErrDuplicateCard   = errors.New("card ID already exists")
	ErrRedundantMove   = errors.New("card is already at the target position")
	ErrIDExhausted     = errors.New("could not generate a unique card ID")
)

// IsNoOp reports whether err is one of the silent no-op conditions
// (not-found, invalid input or redundant move) rather than a real failure.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrRedundantMove) ||
		errors.Is(err, ErrDuplicateColumn)
}
