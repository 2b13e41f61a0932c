package drag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type move struct {
	id, before types.CardID
	column     types.ColumnKey
}

type fakeCommitter struct {
	moves   []move
	removed []types.CardID
	err     error
}

func (f *fakeCommitter) MoveCard(id, before types.CardID, column types.ColumnKey) error {
	f.moves = append(f.moves, move{id, before, column})
	return f.err
}

func (f *fakeCommitter) RemoveCard(id types.CardID) error {
	f.removed = append(f.removed, id)
	return f.err
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	r := slots.NewRegistry(slots.ActivationOffset)
	r.Register("backlog", "1", slots.Extent{Top: 100, Height: 50})
	r.Register("backlog", "2", slots.Extent{Top: 150, Height: 50})
	r.Register("backlog", types.EndOfColumn, slots.Extent{Top: 200, Height: 10})
	r.Register("done", types.EndOfColumn, slots.Extent{Top: 100, Height: 10})
	return NewSession(r)
}

// ============================================================================
// STATE MACHINE
// ============================================================================

func TestSession_StartsIdle(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, Idle, s.State())
	_, dragging := s.CardID()
	assert.False(t, dragging)
	_, ok := s.Highlight()
	assert.False(t, ok)
}

func TestSession_OverHighlightsWithoutCommitting(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}
	require.NoError(t, s.Start("3"))

	for _, y := range []float64{90, 160, 300, 160} {
		_, err := s.Over("backlog", y)
		require.NoError(t, err)
	}

	slot, ok := s.Highlight()
	require.True(t, ok)
	assert.Equal(t, types.CardID("2"), slot.BeforeID)
	assert.Empty(t, c.moves)
	assert.Equal(t, Dragging, s.State())
}

func TestSession_DropMovesToHighlightedSlot(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	require.NoError(t, s.Start("3"))
	_, err := s.Over("backlog", 160)
	require.NoError(t, err)

	out, err := s.Drop("backlog", c)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMoved, out.Kind)
	assert.Equal(t, []move{{"3", "2", "backlog"}}, c.moves)
	assert.Equal(t, Idle, s.State())
	_, ok := s.Highlight()
	assert.False(t, ok)
}

func TestSession_LeaveClearsHighlightButKeepsDragging(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	require.NoError(t, s.Start("3"))
	_, err := s.Over("backlog", 110)
	require.NoError(t, err)

	require.NoError(t, s.Leave("done"))
	_, ok := s.Highlight()
	assert.True(t, ok, "leaving another column keeps the highlight")

	require.NoError(t, s.Leave("backlog"))
	_, ok = s.Highlight()
	assert.False(t, ok)
	assert.Equal(t, Dragging, s.State())

	// Re-entering highlights again
	_, err = s.Over("done", 10)
	require.NoError(t, err)
	slot, ok := s.Highlight()
	require.True(t, ok)
	assert.Equal(t, types.ColumnKey("done"), slot.Column)

	_, err = s.Drop("done", c)
	require.NoError(t, err)
	assert.Equal(t, []move{{"3", types.EndOfColumn, "done"}}, c.moves)
}

func TestSession_DropWithoutHighlightGoesToEnd(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	require.NoError(t, s.Start("1"))
	_, err := s.Over("backlog", 110)
	require.NoError(t, err)

	out, err := s.Drop("done", c)
	require.NoError(t, err)
	assert.Equal(t, types.EndOfColumn, out.BeforeID)
	assert.Equal(t, []move{{"1", types.EndOfColumn, "done"}}, c.moves)
}

func TestSession_EndCancelsWithoutMutation(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	require.NoError(t, s.Start("1"))
	_, _ = s.Over("backlog", 160)

	out, ended := s.End()
	assert.True(t, ended)
	assert.Equal(t, OutcomeCancelled, out.Kind)
	assert.Empty(t, c.moves)
	assert.Empty(t, c.removed)

	_, ended = s.End()
	assert.False(t, ended, "drag-end after drop is a no-op")
}

func TestSession_DropDiscard(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	require.NoError(t, s.Start("4"))
	require.NoError(t, s.EnterDiscard())
	assert.True(t, s.OverDiscard())
	require.NoError(t, s.LeaveDiscard())
	assert.False(t, s.OverDiscard())
	require.NoError(t, s.EnterDiscard())

	out, err := s.DropDiscard(c)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDiscarded, out.Kind)
	assert.Equal(t, []types.CardID{"4"}, c.removed)
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.OverDiscard())
}

func TestSession_CommitterRejection(t *testing.T) {
	s := newTestSession(t)
	rejected := errors.New("redundant")
	c := &fakeCommitter{err: rejected}

	require.NoError(t, s.Start("1"))
	out, err := s.Drop("backlog", c)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, out.Kind)
	assert.ErrorIs(t, out.Err, rejected)
	assert.Equal(t, Idle, s.State())
}

func TestSession_ProtocolErrors(t *testing.T) {
	s := newTestSession(t)
	c := &fakeCommitter{}

	_, err := s.Over("backlog", 10)
	assert.ErrorIs(t, err, ErrNotDragging)
	assert.ErrorIs(t, s.Leave("backlog"), ErrNotDragging)
	assert.ErrorIs(t, s.EnterDiscard(), ErrNotDragging)
	_, err = s.Drop("backlog", c)
	assert.ErrorIs(t, err, ErrNotDragging)
	_, err = s.DropDiscard(c)
	assert.ErrorIs(t, err, ErrNotDragging)

	assert.ErrorIs(t, s.Start(""), ErrEmptyCardID)
	assert.ErrorIs(t, s.Start(types.EndOfColumn), ErrEmptyCardID)
	require.NoError(t, s.Start("1"))
	assert.ErrorIs(t, s.Start("2"), ErrAlreadyDragging)

	_, err = s.Over("unregistered", 10)
	assert.ErrorIs(t, err, ErrNoSlots)
	_, ok := s.Highlight()
	assert.False(t, ok)

	assert.Empty(t, c.moves)
}
