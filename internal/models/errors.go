package models

import "errors"

// Domain-specific validation errors
var (
	// ErrInvalidPriority indicates a priority outside Low, Medium, High, Urgent
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate indicates a due date that is not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")
)
