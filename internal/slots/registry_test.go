package slots

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestRegistry_SentinelAlwaysLast(t *testing.T) {
	r := NewRegistry(ActivationOffset)

	r.Register("todo", types.EndOfColumn, Extent{Top: 200})
	r.Register("todo", "5", Extent{Top: 100})
	r.Register("todo", "6", Extent{Top: 150})

	slots := r.Slots("todo")
	require.Len(t, slots, 3)
	assert.Equal(t, types.CardID("5"), slots[0].BeforeID)
	assert.Equal(t, types.CardID("6"), slots[1].BeforeID)
	assert.True(t, slots[2].IsEnd())
	assert.True(t, r.HasSentinel("todo"))
}

func TestRegistry_ReRegisterReplacesExtent(t *testing.T) {
	r := NewRegistry(ActivationOffset)

	r.Register("todo", "5", Extent{Top: 100})
	r.Register("todo", "6", Extent{Top: 150})
	r.Register("todo", "5", Extent{Top: 110, Height: 3})

	slots := r.Slots("todo")
	require.Len(t, slots, 2)
	assert.Equal(t, types.CardID("5"), slots[0].BeforeID)
	assert.Equal(t, Extent{Top: 110, Height: 3}, slots[0].Extent)
}

func TestRegistry_UnregisterAndReset(t *testing.T) {
	r := NewRegistry(ActivationOffset)

	r.Register("todo", "5", Extent{Top: 100})
	r.Register("todo", types.EndOfColumn, Extent{Top: 150})
	r.Register("done", types.EndOfColumn, Extent{Top: 100})

	r.Unregister("todo", "5")
	r.Unregister("todo", "missing")
	r.Unregister("nowhere", "5")
	assert.Len(t, r.Slots("todo"), 1)

	r.Unregister("todo", types.EndOfColumn)
	assert.False(t, r.HasSentinel("todo"))

	r.Reset("done")
	assert.Empty(t, r.Slots("done"))

	r.Register("done", "1", Extent{})
	r.ResetAll()
	assert.Empty(t, r.Slots("done"))
}

func TestRegistry_Locate(t *testing.T) {
	r := NewRegistry(ActivationOffset)
	r.Register("backlog", "1", Extent{Top: 100, Height: 50})
	r.Register("backlog", "2", Extent{Top: 150, Height: 50})
	r.Register("backlog", types.EndOfColumn, Extent{Top: 200, Height: 10})

	slot, ok := r.Locate("backlog", 160)
	require.True(t, ok)
	assert.Equal(t, types.CardID("2"), slot.BeforeID)
	assert.Equal(t, types.ColumnKey("backlog"), slot.Column)

	_, ok = r.Locate("done", 160)
	assert.False(t, ok)
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	r := NewRegistry(ActivationOffset)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register("todo", types.CardID(rune('a'+i)), Extent{Top: float64(i * 10)})
			_, _ = r.Locate("todo", float64(i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Slots("todo"), 20)
}
