package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Constants Tests
// ============================================================================

func TestEventTypes(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  string
	}{
		{EventCardAdded, "card_added"},
		{EventCardRemoved, "card_removed"},
		{EventCardMoved, "card_moved"},
		{EventCardUpdated, "card_updated"},
		{EventColumnAdded, "column_added"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, string(tt.eventType))
	}
}

// ============================================================================
// Bus Tests
// ============================================================================

func TestBus_PublishStampsSequence(t *testing.T) {
	bus := NewBus()

	first := bus.Publish(Event{Type: EventCardAdded, CardID: "a"})
	second := bus.Publish(Event{Type: EventCardRemoved, CardID: "a"})

	assert.Equal(t, int64(1), first.SequenceID)
	assert.Equal(t, int64(2), second.SequenceID)
	assert.Equal(t, int64(2), bus.LastSequence())
	assert.False(t, first.Timestamp.IsZero())
}

func TestBus_PublishKeepsExplicitTimestamp(t *testing.T) {
	bus := NewBus()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := bus.Publish(Event{Type: EventCardMoved, Timestamp: at})

	assert.True(t, got.Timestamp.Equal(at))
}

func TestBus_SubscribersReceiveInOrder(t *testing.T) {
	bus := NewBus()
	var got []int64
	var order []string

	bus.Subscribe(func(e Event) {
		got = append(got, e.SequenceID)
		order = append(order, "first")
	})
	bus.Subscribe(func(e Event) {
		order = append(order, "second")
	})

	bus.Publish(Event{Type: EventCardAdded})
	bus.Publish(Event{Type: EventCardUpdated})

	assert.Equal(t, []int64{1, 2}, got)
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0

	unsubscribe := bus.Subscribe(func(Event) { count++ })
	bus.Publish(Event{Type: EventCardAdded})
	unsubscribe()
	bus.Publish(Event{Type: EventCardAdded})

	assert.Equal(t, 1, count)
}

func TestBus_PanickingSubscriberDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	delivered := false

	bus.Subscribe(func(Event) { panic("boom") })
	bus.Subscribe(func(Event) { delivered = true })

	require.NotPanics(t, func() {
		bus.Publish(Event{Type: EventColumnAdded, Column: "review"})
	})
	assert.True(t, delivered)
}

func TestBus_SubscriberMayPublish(t *testing.T) {
	bus := NewBus()
	var seen []EventType

	bus.Subscribe(func(e Event) {
		seen = append(seen, e.Type)
		if e.Type == EventCardAdded {
			bus.Publish(Event{Type: EventCardUpdated})
		}
	})

	bus.Publish(Event{Type: EventCardAdded})

	assert.Equal(t, []EventType{EventCardAdded, EventCardUpdated}, seen)
}

func TestBus_ConcurrentPublishUniqueSequences(t *testing.T) {
	bus := NewBus()
	const n = 50

	var mu sync.Mutex
	seen := make(map[int64]bool)
	bus.Subscribe(func(e Event) {
		mu.Lock()
		seen[e.SequenceID] = true
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(Event{Type: EventCardMoved})
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	assert.Equal(t, int64(n), bus.LastSequence())
}
