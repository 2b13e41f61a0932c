package board

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// maxIDAttempts bounds retries when a generator returns an id already on the board
const maxIDAttempts = 16

// AddCard appends a new card with the given title to the end of the flat sequence
func (b Board) AddCard(column types.ColumnKey, title string) (Board, models.Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return b, models.Card{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return b, models.Card{}, ErrTitleTooLong
	}
	if !b.HasColumn(column) {
		return b, models.Card{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	id, err := b.freshID()
	if err != nil {
		return b, models.Card{}, err
	}

	card := models.Card{
		ID:        id,
		Title:     title,
		Column:    column,
		Priority:  models.PriorityLow,
		Assignees: []string{},
		Status:    models.DefaultStatus,
	}

	cards := make([]models.Card, 0, len(b.cards)+1)
	cards = append(cards, b.cards...)
	cards = append(cards, card)

	return b.withCards(cards), card.Clone(), nil
}

// RemoveCard deletes the card with the given id
func (b Board) RemoveCard(id types.CardID) (Board, error) {
	i := b.cardIndex(id)
	if i < 0 {
		return b, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	cards := make([]models.Card, 0, len(b.cards)-1)
	cards = append(cards, b.cards[:i]...)
	cards = append(cards, b.cards[i+1:]...)

	return b.withCards(cards), nil
}

// MoveCard relocates card id into target, immediately before the card
// beforeID, or to the end of the flat sequence when beforeID is
// types.EndOfColumn.
//
// A move that would leave every column's order unchanged returns
// ErrRedundantMove: dropping a card before itself (in any column), before
// the card that already follows it in its column, or at the end of the
// column it already ends.
func (b Board) MoveCard(id, beforeID types.CardID, target types.ColumnKey) (Board, error) {
	from := b.cardIndex(id)
	if from < 0 {
		return b, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	if !b.HasColumn(target) {
		return b, fmt.Errorf("%w: %s", ErrColumnNotFound, target)
	}
	if !beforeID.IsEnd() && b.cardIndex(beforeID) < 0 {
		return b, fmt.Errorf("%w: insertion point %s", ErrCardNotFound, beforeID)
	}
	if b.isCurrentPosition(from, beforeID, target) {
		return b, ErrRedundantMove
	}

	moving := b.cards[from].Clone()
	moving.Column = target

	rest := make([]models.Card, 0, len(b.cards))
	rest = append(rest, b.cards[:from]...)
	rest = append(rest, b.cards[from+1:]...)

	if beforeID.IsEnd() {
		return b.withCards(append(rest, moving)), nil
	}

	at := slices.IndexFunc(rest, func(c models.Card) bool { return c.ID == beforeID })
	return b.withCards(slices.Insert(rest, at, moving)), nil
}

// isCurrentPosition reports whether inserting the card at index from before
// beforeID in target reproduces its current place in every column view
func (b Board) isCurrentPosition(from int, beforeID types.CardID, target types.ColumnKey) bool {
	card := b.cards[from]
	// a card cannot be its own insertion point, whatever the target
	if beforeID == card.ID {
		return true
	}
	if card.Column != target {
		return false
	}
	return beforeID == b.nextInColumn(from)
}

// nextInColumn returns the id of the card following index i in its column,
// or the end-of-column sentinel when it is the last one
func (b Board) nextInColumn(i int) types.CardID {
	col := b.cards[i].Column
	for _, c := range b.cards[i+1:] {
		if c.Column == col {
			return c.ID
		}
	}
	return types.EndOfColumn
}

// Field names a scalar card field that can be edited in place
type Field int

const (
	FieldPriority Field = iota
	FieldAssignees
	FieldDueDate
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldPriority:
		return "priority"
	case FieldAssignees:
		return "assignees"
	case FieldDueDate:
		return "due_date"
	case FieldDescription:
		return "description"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// FieldUpdate carries a new value for exactly one card field.
// Build it with PriorityUpdate, AssigneesUpdate, DueDateUpdate or DescriptionUpdate.
type FieldUpdate struct {
	Field       Field
	Priority    models.Priority
	Assignees   []string
	DueDate     *time.Time
	Description string
}

// PriorityUpdate sets the card priority
func PriorityUpdate(p models.Priority) FieldUpdate {
	return FieldUpdate{Field: FieldPriority, Priority: p}
}

// AssigneesUpdate replaces the card assignees
func AssigneesUpdate(assignees []string) FieldUpdate {
	return FieldUpdate{Field: FieldAssignees, Assignees: assignees}
}

// DueDateUpdate sets or clears (nil) the card due date
func DueDateUpdate(due *time.Time) FieldUpdate {
	return FieldUpdate{Field: FieldDueDate, DueDate: due}
}

// DescriptionUpdate replaces the card description
func DescriptionUpdate(description string) FieldUpdate {
	return FieldUpdate{Field: FieldDescription, Description: description}
}

// UpdateCardField replaces one field of one card. Every other card, and every
// other field of the edited card, is carried over unchanged.
func (b Board) UpdateCardField(id types.CardID, u FieldUpdate) (Board, error) {
	i := b.cardIndex(id)
	if i < 0 {
		return b, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	card := b.cards[i].Clone()
	switch u.Field {
	case FieldPriority:
		if !u.Priority.Valid() {
			return b, models.ErrInvalidPriority
		}
		card.Priority = u.Priority
	case FieldAssignees:
		card.Assignees = slices.Clone(u.Assignees)
		if card.Assignees == nil {
			card.Assignees = []string{}
		}
	case FieldDueDate:
		card.DueDate = nil
		if u.DueDate != nil {
			d := *u.DueDate
			card.DueDate = &d
		}
	case FieldDescription:
		card.Description = u.Description
	default:
		return b, fmt.Errorf("%w: %s", ErrUnknownField, u.Field)
	}

	cards := slices.Clone(b.cards)
	cards[i] = card

	return b.withCards(cards), nil
}

// freshID asks the generator for an id that no card on the board uses
func (b Board) freshID() (types.CardID, error) {
	ids := b.ids
	if ids == nil {
		ids = UUIDGenerator{}
	}
	for range maxIDAttempts {
		id := ids.NextID()
		if id == "" || id.IsEnd() {
			continue
		}
		if b.cardIndex(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
