package slots

import (
	"slices"
	"sync"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Registry holds the insertion slots of every column. The presentation layer
// registers one slot per rendered card plus one end-of-column sentinel on each
// render pass; the drag session only ever reads it.
type Registry struct {
	mu      sync.RWMutex
	offset  float64
	columns map[types.ColumnKey]*columnSlots
}

type columnSlots struct {
	cards []Slot
	end   *Slot
}

// NewRegistry creates an empty registry whose Locate uses the given activation offset
func NewRegistry(offset float64) *Registry {
	return &Registry{
		offset:  offset,
		columns: make(map[types.ColumnKey]*columnSlots),
	}
}

// Offset returns the activation offset used by Locate
func (r *Registry) Offset() float64 {
	return r.offset
}

// Register records the extent of the slot before beforeID in column, or of the
// column's sentinel when beforeID is types.EndOfColumn. Registering an existing
// slot replaces its extent and keeps its position.
func (r *Registry) Register(column types.ColumnKey, beforeID types.CardID, extent Extent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs, ok := r.columns[column]
	if !ok {
		cs = &columnSlots{}
		r.columns[column] = cs
	}

	slot := Slot{Column: column, BeforeID: beforeID, Extent: extent}
	if beforeID.IsEnd() {
		cs.end = &slot
		return
	}

	if i := cs.index(beforeID); i >= 0 {
		cs.cards[i] = slot
		return
	}
	cs.cards = append(cs.cards, slot)
}

// Unregister removes one slot. Unknown slots are ignored.
func (r *Registry) Unregister(column types.ColumnKey, beforeID types.CardID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs, ok := r.columns[column]
	if !ok {
		return
	}
	if beforeID.IsEnd() {
		cs.end = nil
		return
	}
	if i := cs.index(beforeID); i >= 0 {
		cs.cards = slices.Delete(cs.cards, i, i+1)
	}
}

// Reset drops every slot of a column, ready for a fresh render pass
func (r *Registry) Reset(column types.ColumnKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.columns, column)
}

// ResetAll drops every slot of every column
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.columns)
}

// Slots returns the column's card slots in registration order followed by its
// sentinel, if one is registered
func (r *Registry) Slots(column types.ColumnKey) []Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.columns[column]
	if !ok {
		return nil
	}
	out := make([]Slot, 0, len(cs.cards)+1)
	out = append(out, cs.cards...)
	if cs.end != nil {
		out = append(out, *cs.end)
	}
	return out
}

// HasSentinel reports whether the column's end-of-column slot is registered
func (r *Registry) HasSentinel(column types.ColumnKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.columns[column]
	return ok && cs.end != nil
}

// Locate resolves pointer coordinate y against the column's registered slots
func (r *Registry) Locate(column types.ColumnKey, y float64) (Slot, bool) {
	return Nearest(y, r.Slots(column), r.offset)
}

func (cs *columnSlots) index(beforeID types.CardID) int {
	return slices.IndexFunc(cs.cards, func(s Slot) bool { return s.BeforeID == beforeID })
}
