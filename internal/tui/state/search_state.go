package state

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// SearchState manages the vim-style search functionality state.
// Cards that do not match an active query are dimmed, never hidden, so the
// drop slots stay where the user sees them.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the filter is applied
	IsActive bool

	// matches holds the ids of the cards matching Query
	matches map[types.CardID]bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendChar appends text to the search query.
// Returns true if the text was added, false if query is at max length.
func (s *SearchState) AppendChar(text string) bool {
	const maxQueryLength = 100

	if len(s.Query)+len(text) > maxQueryLength {
		return false
	}

	s.Query += text
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if len(s.Query) == 0 {
		return false
	}

	runes := []rune(s.Query)
	s.Query = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and turns the filter off
func (s *SearchState) Clear() {
	s.Query = ""
	s.IsActive = false
	s.matches = nil
}

// Activate turns the filter on.
// This is called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.IsActive = s.Query != ""
}

// Recompute fuzzy matches the query against each card's title, assignees
// and description
func (s *SearchState) Recompute(cards []models.Card) {
	s.matches = make(map[types.CardID]bool)
	if s.Query == "" {
		return
	}

	haystack := make([]string, len(cards))
	for i, c := range cards {
		haystack[i] = cardSearchString(c)
	}
	for _, match := range fuzzy.Find(s.Query, haystack) {
		s.matches[cards[match.Index].ID] = true
	}
}

// Filtering reports whether a query is narrowing the board
func (s *SearchState) Filtering() bool {
	return s.Query != ""
}

// Dimmed reports whether a card is filtered out by the current query
func (s *SearchState) Dimmed(id types.CardID) bool {
	return s.Filtering() && !s.matches[id]
}

// cardSearchString builds the text a card is matched against
func cardSearchString(c models.Card) string {
	parts := []string{c.Title}
	parts = append(parts, c.Assignees...)
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	return strings.Join(parts, " ")
}
