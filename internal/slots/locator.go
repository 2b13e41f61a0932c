package slots

import (
	"math"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// ActivationOffset is how far below a slot's top edge its activation line sits
const ActivationOffset = 50.0

// Extent is the vertical span [Top, Top+Height) of a slot as laid out by the presentation layer
type Extent struct {
	Top    float64
	Height float64
}

// Slot is an insertion point in a column: before the card BeforeID, or at the
// end of the column when BeforeID is types.EndOfColumn
type Slot struct {
	Column   types.ColumnKey
	BeforeID types.CardID
	Extent   Extent
}

// IsEnd reports whether the slot is the column's trailing sentinel
func (s Slot) IsEnd() bool {
	return s.BeforeID.IsEnd()
}

// Nearest resolves pointer coordinate y against an ordered slot sequence.
//
// Each slot's activation line is Top+offset. The chosen slot is the one whose
// activation line is the closest one below the pointer (the largest negative
// y-line distance); on equal distance the earlier slot wins. When the pointer
// is at or below every activation line the last slot, the end-of-column
// sentinel, is chosen. ok is false only when slots is empty.
func Nearest(y float64, slots []Slot, offset float64) (Slot, bool) {
	if len(slots) == 0 {
		return Slot{}, false
	}

	best := slots[len(slots)-1]
	bestOffset := math.Inf(-1)
	for _, s := range slots {
		d := y - (s.Extent.Top + offset)
		if d < 0 && d > bestOffset {
			best = s
			bestOffset = d
		}
	}
	return best, true
}
