package events

// EventPublisher defines the interface for publishing board changes.
// The board controller depends on this behavior rather than on Bus so tests
// can substitute a recorder.
type EventPublisher interface {
	// Publish stamps the event with a sequence number and timestamp and
	// delivers it to every subscriber
	Publish(event Event) Event

	// Subscribe registers fn for every later event and returns a function
	// that removes the subscription
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
