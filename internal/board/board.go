package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Board is the authoritative board state: one flat ordered sequence of cards
// and one ordered sequence of columns. A column's cards are the stable
// filtered subsequence of the flat sequence whose Column matches its key.
//
// Board is an immutable value. Every operation returns a new Board and never
// writes to the receiver's slices, so older values stay valid snapshots.
type Board struct {
	cards   []models.Card
	columns []models.Column
	ids     IDGenerator
}

// New builds a board from columns and cards after checking the board
// invariants: unique column keys, unique card ids, and every card in a known column.
func New(columns []models.Column, cards []models.Card, ids IDGenerator) (Board, error) {
	if ids == nil {
		ids = UUIDGenerator{}
	}

	keys := make(map[types.ColumnKey]bool, len(columns))
	for _, col := range columns {
		if col.Key == "" {
			return Board{}, fmt.Errorf("%w: column %q has no key", ErrEmptyTitle, col.Title)
		}
		if keys[col.Key] {
			return Board{}, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.Key)
		}
		keys[col.Key] = true
	}

	seen := make(map[types.CardID]bool, len(cards))
	for _, c := range cards {
		if c.ID == "" || c.ID.IsEnd() {
			return Board{}, fmt.Errorf("%w: %q", ErrInvalidCardID, c.ID)
		}
		if seen[c.ID] {
			return Board{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c.ID)
		}
		if !keys[c.Column] {
			return Board{}, fmt.Errorf("%w: card %s references %q", ErrColumnNotFound, c.ID, c.Column)
		}
		seen[c.ID] = true
	}

	b := Board{
		cards:   make([]models.Card, len(cards)),
		columns: slices.Clone(columns),
		ids:     ids,
	}
	for i, c := range cards {
		b.cards[i] = c.Clone()
	}
	return b, nil
}

// Empty returns a board with no columns and no cards
func Empty(ids IDGenerator) Board {
	b, _ := New(nil, nil, ids)
	return b
}

// Columns returns the columns in layout order
func (b Board) Columns() []models.Column {
	return slices.Clone(b.columns)
}

// Column returns the column with the given key
func (b Board) Column(key types.ColumnKey) (models.Column, bool) {
	i := b.columnIndex(key)
	if i < 0 {
		return models.Column{}, false
	}
	return b.columns[i], true
}

// HasColumn reports whether a column with the given key exists
func (b Board) HasColumn(key types.ColumnKey) bool {
	return b.columnIndex(key) >= 0
}

// Cards returns the full flat card sequence
func (b Board) Cards() []models.Card {
	out := make([]models.Card, len(b.cards))
	for i, c := range b.cards {
		out[i] = c.Clone()
	}
	return out
}

// CardsInColumn returns the column's cards in board order
func (b Board) CardsInColumn(key types.ColumnKey) []models.Card {
	var out []models.Card
	for _, c := range b.cards {
		if c.Column == key {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CountInColumn returns how many cards the column holds
func (b Board) CountInColumn(key types.ColumnKey) int {
	n := 0
	for _, c := range b.cards {
		if c.Column == key {
			n++
		}
	}
	return n
}

// Card returns the card with the given id
func (b Board) Card(id types.CardID) (models.Card, bool) {
	i := b.cardIndex(id)
	if i < 0 {
		return models.Card{}, false
	}
	return b.cards[i].Clone(), true
}

// Len returns the total number of cards
func (b Board) Len() int {
	return len(b.cards)
}

// Order returns the ids of the flat card sequence
func (b Board) Order() []types.CardID {
	ids := make([]types.CardID, len(b.cards))
	for i, c := range b.cards {
		ids[i] = c.ID
	}
	return ids
}

// ColumnOrder returns the ids of a column's cards in board order
func (b Board) ColumnOrder(key types.ColumnKey) []types.CardID {
	var ids []types.CardID
	for _, c := range b.cards {
		if c.Column == key {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (b Board) cardIndex(id types.CardID) int {
	return slices.IndexFunc(b.cards, func(c models.Card) bool { return c.ID == id })
}

func (b Board) columnIndex(key types.ColumnKey) int {
	return slices.IndexFunc(b.columns, func(c models.Column) bool { return c.Key == key })
}

// withCards returns a copy of the board holding cards
func (b Board) withCards(cards []models.Card) Board {
	return Board{cards: cards, columns: b.columns, ids: b.ids}
}

// withColumns returns a copy of the board holding columns
func (b Board) withColumns(columns []models.Column) Board {
	return Board{cards: b.cards, columns: columns, ids: b.ids}
}
