package board

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// IDGenerator hands out card ids. Implementations must be safe for concurrent use.
type IDGenerator interface {
	NextID() types.CardID
}

// UUIDGenerator generates random version 4 UUIDs
type UUIDGenerator struct{}

// NextID returns a new UUID string
func (UUIDGenerator) NextID() types.CardID {
	return types.CardID(uuid.NewString())
}

// CounterGenerator generates monotonically increasing decimal ids
type CounterGenerator struct {
	next atomic.Int64
}

// NewCounterGenerator creates a generator whose first id is start
func NewCounterGenerator(start int64) *CounterGenerator {
	g := &CounterGenerator{}
	g.next.Store(start)
	return g
}

// NextID returns the next counter value
func (g *CounterGenerator) NextID() types.CardID {
	return types.CardID(strconv.FormatInt(g.next.Add(1)-1, 10))
}
