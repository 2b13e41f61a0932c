package events

import (
	"log/slog"
	"sync"
	"time"
)

// Bus delivers board events to in-process subscribers, synchronously and in
// publish order.
type Bus struct {
	mu           sync.Mutex
	subscribers  map[int]func(Event)
	nextSub      int
	lastSequence int64
	now          func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]func(Event)),
		now:         time.Now,
	}
}

// Publish stamps event and hands it to every subscriber. Subscribers run on
// the publishing goroutine; a panicking subscriber is logged and skipped.
func (b *Bus) Publish(event Event) Event {
	b.mu.Lock()
	b.lastSequence++
	event.SequenceID = b.lastSequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	subs := make([]func(Event), 0, len(b.subscribers))
	for id := 0; id < b.nextSub; id++ {
		if fn, ok := b.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	b.mu.Unlock()

	for _, fn := range subs {
		deliver(fn, event)
	}

	slog.Debug("event published",
		"event_type", event.Type,
		"card_id", event.CardID,
		"sequence", event.SequenceID,
		"subscribers", len(subs))

	return event
}

// Subscribe registers fn for every later event
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSub
	b.nextSub++
	b.subscribers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}

// LastSequence returns the sequence number of the most recent event
func (b *Bus) LastSequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSequence
}

func deliver(fn func(Event), event Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event subscriber panicked", "event_type", event.Type, "panic", r)
		}
	}()
	fn(event)
}
