package models

import "github.com/thenoetrevino/swimlane/internal/types"

// Column represents a board column (e.g., "Backlog", "In progress").
// Key is the slug of the title and is unique on a board; the order of columns
// on the board is their left-to-right layout.
type Column struct {
	Title        string
	Key          types.ColumnKey
	HeadingColor ColorToken
}
