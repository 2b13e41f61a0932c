package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ============================================================================
// Test Helpers
// ============================================================================

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *[]events.Event) {
	t.Helper()
	bus := events.NewBus()
	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })

	a := New(board.Seed(board.NewCounterGenerator(100), today), WithEventPublisher(bus))
	return a, &got
}

// layout registers one 100 unit tall slot per card, then the sentinel
func layout(a *App, column types.ColumnKey) {
	a.Slots().Reset(column)
	cards := a.CardsInColumn(column)
	for i, c := range cards {
		a.Slots().Register(column, c.ID, slots.Extent{Top: float64(i * 100), Height: 100})
	}
	a.Slots().Register(column, types.EndOfColumn, slots.Extent{Top: float64(len(cards) * 100), Height: 100})
}

func columnOrder(a *App, column types.ColumnKey) []types.CardID {
	return a.Board().ColumnOrder(column)
}

// ============================================================================
// Command Tests
// ============================================================================

func TestNew_Defaults(t *testing.T) {
	a := New(board.Seed(nil, today))

	require.NotNil(t, a.Slots())
	assert.Equal(t, slots.ActivationOffset, a.Slots().Offset())
	assert.Len(t, a.Columns(), 4)
	assert.Len(t, a.Cards(), 6)
}

func TestNew_WithActivationOffset(t *testing.T) {
	a := New(board.Seed(nil, today), WithActivationOffset(20))
	assert.Equal(t, 20.0, a.Slots().Offset())
}

func TestAddCard(t *testing.T) {
	a, got := newTestApp(t)

	card, err := a.AddCard(board.ColumnDoing, "  Write docs ")
	require.NoError(t, err)

	assert.Equal(t, "Write docs", card.Title)
	assert.Equal(t, []types.CardID{card.ID}, columnOrder(a, board.ColumnDoing))
	require.Len(t, *got, 1)
	assert.Equal(t, events.EventCardAdded, (*got)[0].Type)
	assert.Equal(t, card.ID, (*got)[0].CardID)
}

func TestAddCard_EmptyTitleIsSilent(t *testing.T) {
	a, got := newTestApp(t)
	before := a.Board().Order()

	_, err := a.AddCard(board.ColumnDoing, "   ")

	assert.ErrorIs(t, err, board.ErrEmptyTitle)
	assert.Equal(t, before, a.Board().Order())
	assert.Empty(t, *got)
}

func TestMoveCard_RedundantPublishesNothing(t *testing.T) {
	a, got := newTestApp(t)

	err := a.MoveCard("1", "2", board.ColumnBacklog)

	assert.ErrorIs(t, err, board.ErrRedundantMove)
	assert.Empty(t, *got)
}

func TestMoveCard_BeforeItselfInOtherColumn(t *testing.T) {
	a, got := newTestApp(t)

	err := a.MoveCard("3", "3", board.ColumnDone)
	assert.ErrorIs(t, err, board.ErrRedundantMove)
	assert.Empty(t, a.CardsInColumn(board.ColumnDone))
	assert.Empty(t, *got)
}

func TestMutate_ReleasesLockAfterPanic(t *testing.T) {
	a, got := newTestApp(t)

	assert.Panics(t, func() {
		_ = a.mutate(func() error {
			a.queue(events.Event{Type: events.EventCardAdded})
			panic("boom")
		})
	})

	// a held lock would block here
	_, err := a.AddCard(board.ColumnTodo, "Still usable")
	require.NoError(t, err)
	assert.Len(t, a.CardsInColumn(board.ColumnTodo), 3)
	require.Len(t, *got, 1, "the event queued before the panic is dropped")
	assert.Equal(t, events.EventCardAdded, (*got)[0].Type)
	assert.Equal(t, board.ColumnTodo, (*got)[0].Column)
}

func TestRemoveCard(t *testing.T) {
	a, got := newTestApp(t)

	require.NoError(t, a.RemoveCard("5"))
	assert.Equal(t, []types.CardID{"6"}, columnOrder(a, board.ColumnTodo))

	assert.ErrorIs(t, a.RemoveCard("5"), board.ErrCardNotFound)
	assert.Len(t, *got, 1)
}

func TestAddColumn(t *testing.T) {
	a, got := newTestApp(t)

	col, err := a.AddColumn("code review", models.ColorPurple)
	require.NoError(t, err)

	assert.Equal(t, types.ColumnKey("code-review"), col.Key)
	assert.Equal(t, "Code Review", col.Title)
	assert.Len(t, a.Columns(), 5)
	require.Len(t, *got, 1)
	assert.Equal(t, events.EventColumnAdded, (*got)[0].Type)

	_, err = a.AddColumn("Code Review", models.ColorRed)
	assert.ErrorIs(t, err, board.ErrDuplicateColumn)
}

func TestSubscriberMayQueryController(t *testing.T) {
	bus := events.NewBus()
	a := New(board.Seed(nil, today), WithEventPublisher(bus))

	var count int
	bus.Subscribe(func(events.Event) {
		count = len(a.Cards())
	})

	require.NoError(t, a.RemoveCard("1"))
	assert.Equal(t, 5, count)
}

// ============================================================================
// Drag Protocol Tests
// ============================================================================

func TestDrag_ReorderWithinColumn(t *testing.T) {
	a, got := newTestApp(t)
	layout(a, board.ColumnBacklog)

	require.NoError(t, a.DragStart("3"))
	slot, err := a.DragOver(board.ColumnBacklog, 120)
	require.NoError(t, err)
	assert.Equal(t, types.CardID("2"), slot.BeforeID)

	// Hovering never changes the board
	assert.Equal(t, []types.CardID{"1", "2", "3", "4"}, columnOrder(a, board.ColumnBacklog))
	assert.Empty(t, *got)

	out, err := a.Drop(board.ColumnBacklog)
	require.NoError(t, err)
	assert.Equal(t, drag.OutcomeMoved, out.Kind)
	assert.Equal(t, []types.CardID{"1", "3", "2", "4"}, columnOrder(a, board.ColumnBacklog))

	_, dragging := a.Dragging()
	assert.False(t, dragging)
	_, highlighted := a.Highlight()
	assert.False(t, highlighted)

	require.Len(t, *got, 1)
	assert.Equal(t, events.EventCardMoved, (*got)[0].Type)
	assert.Equal(t, types.CardID("2"), (*got)[0].BeforeID)
}

func TestDrag_DropBelowEveryCardGoesToEnd(t *testing.T) {
	a, _ := newTestApp(t)
	layout(a, board.ColumnTodo)

	require.NoError(t, a.DragStart("1"))
	slot, err := a.DragOver(board.ColumnTodo, 500)
	require.NoError(t, err)
	assert.True(t, slot.IsEnd())

	_, err = a.Drop(board.ColumnTodo)
	require.NoError(t, err)

	assert.Equal(t, []types.CardID{"5", "6", "1"}, columnOrder(a, board.ColumnTodo))
	assert.Equal(t, []types.CardID{"2", "3", "4"}, columnOrder(a, board.ColumnBacklog))
}

func TestDrag_DropIntoEmptyColumnWithoutHighlight(t *testing.T) {
	a, _ := newTestApp(t)

	require.NoError(t, a.DragStart("6"))
	out, err := a.Drop(board.ColumnDone)
	require.NoError(t, err)

	assert.Equal(t, types.EndOfColumn, out.BeforeID)
	assert.Equal(t, []types.CardID{"6"}, columnOrder(a, board.ColumnDone))
}

func TestDrag_LeaveClearsHighlightOnly(t *testing.T) {
	a, _ := newTestApp(t)
	layout(a, board.ColumnBacklog)

	require.NoError(t, a.DragStart("4"))
	_, err := a.DragOver(board.ColumnBacklog, 10)
	require.NoError(t, err)
	require.NoError(t, a.DragLeave(board.ColumnBacklog))

	_, highlighted := a.Highlight()
	assert.False(t, highlighted)
	id, dragging := a.Dragging()
	assert.True(t, dragging)
	assert.Equal(t, types.CardID("4"), id)
}

func TestDrag_RedundantDropIsUnchanged(t *testing.T) {
	a, got := newTestApp(t)
	layout(a, board.ColumnBacklog)

	require.NoError(t, a.DragStart("2"))
	_, err := a.DragOver(board.ColumnBacklog, 120)
	require.NoError(t, err)

	out, err := a.Drop(board.ColumnBacklog)
	require.NoError(t, err)

	assert.Equal(t, drag.OutcomeUnchanged, out.Kind)
	assert.ErrorIs(t, out.Err, board.ErrRedundantMove)
	assert.Empty(t, *got)
}

func TestDrag_Discard(t *testing.T) {
	a, got := newTestApp(t)

	require.NoError(t, a.DragStart("2"))
	require.NoError(t, a.EnterDiscard())
	assert.True(t, a.OverDiscard())

	out, err := a.DropDiscard()
	require.NoError(t, err)

	assert.Equal(t, drag.OutcomeDiscarded, out.Kind)
	_, ok := a.Card("2")
	assert.False(t, ok)
	assert.False(t, a.OverDiscard())
	require.Len(t, *got, 1)
	assert.Equal(t, events.EventCardRemoved, (*got)[0].Type)
}

func TestDrag_CancelLeavesBoardUntouched(t *testing.T) {
	a, got := newTestApp(t)
	layout(a, board.ColumnBacklog)
	before := a.Board().Order()

	require.NoError(t, a.DragStart("1"))
	for y := 0.0; y < 500; y += 37 {
		_, err := a.DragOver(board.ColumnBacklog, y)
		require.NoError(t, err)
	}
	out, ok := a.DragEnd()

	assert.True(t, ok)
	assert.Equal(t, drag.OutcomeCancelled, out.Kind)
	assert.Equal(t, before, a.Board().Order())
	assert.Empty(t, *got)

	_, ok = a.DragEnd()
	assert.False(t, ok)
}

func TestDrag_OutOfOrderEvents(t *testing.T) {
	a, _ := newTestApp(t)

	assert.ErrorIs(t, a.DragStart("missing"), board.ErrCardNotFound)

	_, err := a.Drop(board.ColumnBacklog)
	assert.ErrorIs(t, err, drag.ErrNotDragging)

	_, err = a.DragOver(board.ColumnBacklog, 0)
	assert.ErrorIs(t, err, drag.ErrNotDragging)

	require.NoError(t, a.DragStart("1"))
	assert.ErrorIs(t, a.DragStart("2"), drag.ErrAlreadyDragging)
}

func TestDrag_CardRemovedMidDrag(t *testing.T) {
	a, _ := newTestApp(t)

	require.NoError(t, a.DragStart("1"))
	require.NoError(t, a.RemoveCard("1"))

	out, err := a.Drop(board.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, drag.OutcomeUnchanged, out.Kind)
	assert.ErrorIs(t, out.Err, board.ErrCardNotFound)
}

func TestNew_WithRegistrySharesSlots(t *testing.T) {
	reg := slots.NewRegistry(slots.ActivationOffset)
	a := New(board.Seed(board.NewCounterGenerator(100), today), WithRegistry(reg), WithActivationOffset(0))

	assert.Same(t, reg, a.Slots())
	assert.Equal(t, slots.ActivationOffset, a.Slots().Offset(), "a given registry keeps its own offset")

	reg.Register(board.ColumnTodo, types.EndOfColumn, slots.Extent{Top: 0, Height: 100})
	require.NoError(t, a.DragStart("1"))
	slot, err := a.DragOver(board.ColumnTodo, 10)
	require.NoError(t, err)
	assert.True(t, slot.IsEnd())
}
