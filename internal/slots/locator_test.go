package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func column(tops ...float64) []Slot {
	slots := make([]Slot, 0, len(tops))
	for i, top := range tops {
		before := types.CardID(string(rune('a' + i)))
		if i == len(tops)-1 {
			before = types.EndOfColumn
		}
		slots = append(slots, Slot{Column: "todo", BeforeID: before, Extent: Extent{Top: top, Height: 4}})
	}
	return slots
}

func TestNearest(t *testing.T) {
	// Slots topped at 100, 150 and the sentinel at 200: activation lines at 150, 200, 250
	slots := column(100, 150, 200)

	tests := []struct {
		name string
		y    float64
		want types.CardID
	}{
		{"between first and second line picks second slot", 160, "b"},
		{"above every line picks first slot", 90, "a"},
		{"just above first line", 149, "a"},
		{"exactly on a line skips that slot", 150, "b"},
		{"below every line falls back to sentinel", 260, types.EndOfColumn},
		{"exactly on the last line falls back to sentinel", 250, types.EndOfColumn},
		{"between second and sentinel line", 210, types.EndOfColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Nearest(tt.y, slots, ActivationOffset)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.BeforeID)
		})
	}
}

func TestNearest_TieKeepsEarlierSlot(t *testing.T) {
	slots := []Slot{
		{BeforeID: "a", Extent: Extent{Top: 100}},
		{BeforeID: "b", Extent: Extent{Top: 100}},
		{BeforeID: types.EndOfColumn, Extent: Extent{Top: 300}},
	}

	got, ok := Nearest(120, slots, ActivationOffset)
	require.True(t, ok)
	assert.Equal(t, types.CardID("a"), got.BeforeID)
}

func TestNearest_EmptyColumn(t *testing.T) {
	_, ok := Nearest(10, nil, ActivationOffset)
	assert.False(t, ok)

	only := column(40)
	got, ok := Nearest(500, only, ActivationOffset)
	require.True(t, ok)
	assert.True(t, got.IsEnd())
}

func TestNearest_CustomOffset(t *testing.T) {
	slots := column(0, 3, 6)

	got, _ := Nearest(1, slots, 1)
	assert.Equal(t, types.CardID("b"), got.BeforeID)

	got, _ = Nearest(0, slots, 1)
	assert.Equal(t, types.CardID("a"), got.BeforeID)
}

func TestNearest_IsPure(t *testing.T) {
	slots := column(100, 150, 200)
	snapshot := append([]Slot(nil), slots...)

	first, _ := Nearest(160, slots, ActivationOffset)
	second, _ := Nearest(160, slots, ActivationOffset)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, slots)
}
