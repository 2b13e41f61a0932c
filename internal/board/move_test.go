package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestMoveCard_WithinColumn(t *testing.T) {
	b := seedBoard(t)

	next, err := b.MoveCard("3", "2", ColumnBacklog)
	require.NoError(t, err)

	assert.Equal(t, ids("1", "3", "2", "4"), next.ColumnOrder(ColumnBacklog))
	assert.Equal(t, ids("1", "2", "3", "4"), b.ColumnOrder(ColumnBacklog), "receiver untouched")
	assertColumnsAreSubsequences(t, next)
}

func TestMoveCard_ToEndOfOtherColumn(t *testing.T) {
	b := seedBoard(t)

	next, err := b.MoveCard("6", types.EndOfColumn, ColumnDone)
	require.NoError(t, err)

	assert.Equal(t, ids("6"), next.ColumnOrder(ColumnDone))
	assert.Equal(t, ids("5"), next.ColumnOrder(ColumnTodo))
	assert.Equal(t, ids("1", "2", "3", "4"), next.ColumnOrder(ColumnBacklog))

	card, _ := next.Card("6")
	assert.Equal(t, ColumnDone, card.Column)
	order := next.Order()
	assert.Equal(t, types.CardID("6"), order[len(order)-1])
}

func TestMoveCard_BeforeCardInOtherColumn(t *testing.T) {
	b := seedBoard(t)

	next, err := b.MoveCard("1", "6", ColumnTodo)
	require.NoError(t, err)

	assert.Equal(t, ids("5", "1", "6"), next.ColumnOrder(ColumnTodo))
	assert.Equal(t, ids("2", "3", "4"), next.ColumnOrder(ColumnBacklog))

	// Moved card immediately precedes the before card in the flat sequence
	order := next.Order()
	for i, id := range order {
		if id == "1" {
			require.Less(t, i+1, len(order))
			assert.Equal(t, types.CardID("6"), order[i+1])
		}
	}
	assertColumnsAreSubsequences(t, next)
}

func TestMoveCard_Completeness(t *testing.T) {
	b := seedBoard(t)

	tests := []struct {
		id     types.CardID
		before types.CardID
		column types.ColumnKey
	}{
		{"1", "4", ColumnBacklog},
		{"4", "1", ColumnBacklog},
		{"5", "2", ColumnBacklog},
		{"2", types.EndOfColumn, ColumnDoing},
		{"1", types.EndOfColumn, ColumnBacklog},
	}

	for _, tt := range tests {
		next, err := b.MoveCard(tt.id, tt.before, tt.column)
		require.NoError(t, err, "%s before %s in %s", tt.id, tt.before, tt.column)

		card, ok := next.Card(tt.id)
		require.True(t, ok)
		assert.Equal(t, tt.column, card.Column)
		assert.Equal(t, b.Len(), next.Len())

		order := next.Order()
		idx := -1
		for i, id := range order {
			if id == tt.id {
				idx = i
			}
		}
		if tt.before.IsEnd() {
			assert.Equal(t, len(order)-1, idx)
		} else {
			assert.Equal(t, tt.before, order[idx+1])
		}
		assertColumnsAreSubsequences(t, next)
	}
}

func TestMoveCard_RedundantMoves(t *testing.T) {
	b := seedBoard(t)

	tests := []struct {
		name   string
		id     types.CardID
		before types.CardID
		column types.ColumnKey
	}{
		{"before itself", "2", "2", ColumnBacklog},
		{"before itself in another column", "3", "3", ColumnDone},
		{"before itself in an empty column", "5", "5", ColumnDoing},
		{"before current successor", "2", "3", ColumnBacklog},
		{"end of column when already last", "4", types.EndOfColumn, ColumnBacklog},
		{"end of column when last but not last overall", "6", types.EndOfColumn, ColumnTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var next Board
			var err error
			require.NotPanics(t, func() {
				next, err = b.MoveCard(tt.id, tt.before, tt.column)
			})
			assert.ErrorIs(t, err, ErrRedundantMove)
			assert.Equal(t, b.Order(), next.Order())
			assert.Equal(t, b.Cards(), next.Cards())
		})
	}
}

func TestMoveCard_SameSlotInOtherColumnIsNotRedundant(t *testing.T) {
	b := seedBoard(t)

	next, err := b.MoveCard("4", types.EndOfColumn, ColumnDoing)
	require.NoError(t, err)
	assert.Equal(t, ids("4"), next.ColumnOrder(ColumnDoing))
}

func TestMoveCard_NotFound(t *testing.T) {
	b := seedBoard(t)

	_, err := b.MoveCard("42", types.EndOfColumn, ColumnDone)
	assert.ErrorIs(t, err, ErrCardNotFound)

	next, err := b.MoveCard("1", "42", ColumnBacklog)
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.Equal(t, b.Order(), next.Order())

	_, err = b.MoveCard("1", types.EndOfColumn, "archive")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestMoveCard_PreservesFields(t *testing.T) {
	b := seedBoard(t)
	b, err := b.UpdateCardField("3", DescriptionUpdate("keep me"))
	require.NoError(t, err)

	next, err := b.MoveCard("3", types.EndOfColumn, ColumnDone)
	require.NoError(t, err)

	card, _ := next.Card("3")
	assert.Equal(t, "keep me", card.Description)
	assert.Equal(t, models.PriorityHigh, card.Priority)
}

func TestMoveCard_Sequence(t *testing.T) {
	b := seedBoard(t)

	steps := []struct {
		id     types.CardID
		before types.CardID
		column types.ColumnKey
	}{
		{"1", types.EndOfColumn, ColumnDoing},
		{"5", "1", ColumnDoing},
		{"3", types.EndOfColumn, ColumnDone},
		{"2", "3", ColumnDone},
		{"1", "4", ColumnBacklog},
	}

	var err error
	for _, s := range steps {
		b, err = b.MoveCard(s.id, s.before, s.column)
		require.NoError(t, err)
		assertColumnsAreSubsequences(t, b)
	}

	assert.Equal(t, ids("1", "4"), b.ColumnOrder(ColumnBacklog))
	assert.Equal(t, ids("6"), b.ColumnOrder(ColumnTodo))
	assert.Equal(t, ids("5"), b.ColumnOrder(ColumnDoing))
	assert.Equal(t, ids("2", "3"), b.ColumnOrder(ColumnDone))
	assert.Equal(t, 6, b.Len())
}
