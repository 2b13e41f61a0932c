package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

const sampleSeed = `columns:
  - title: Ideas
    color: purple
  - title: Shipping Soon
    key: ship
    color: not-a-color
cards:
  - id: a
    title: Try the new parser
    column: ideas
    priority: high
    assignees: [Ana, Bo]
    due: 2024-06-30
    description: |
      # Plan
      - spike
  - title: Cut release
    column: ship
`

func TestParseSeed(t *testing.T) {
	b, err := ParseSeed([]byte(sampleSeed), board.NewCounterGenerator(1))
	require.NoError(t, err)

	cols := b.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, types.ColumnKey("ideas"), cols[0].Key)
	assert.Equal(t, models.ColorPurple, cols[0].HeadingColor)
	assert.Equal(t, types.ColumnKey("ship"), cols[1].Key)
	assert.Equal(t, models.ColorNeutral, cols[1].HeadingColor)

	card, ok := b.Card("a")
	require.True(t, ok)
	assert.Equal(t, models.PriorityHigh, card.Priority)
	assert.Equal(t, []string{"Ana", "Bo"}, card.Assignees)
	assert.Equal(t, "2024-06-30", card.DueLabel())
	assert.Contains(t, card.Description, "# Plan")

	generated, ok := b.Card("1")
	require.True(t, ok)
	assert.Equal(t, "Cut release", generated.Title)
	assert.Equal(t, models.PriorityLow, generated.Priority)
	assert.Equal(t, "-", generated.DueLabel())
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "columns: [oops"},
		{"bad priority", "columns: [{title: a}]\ncards: [{title: x, column: a, priority: soon}]"},
		{"bad due date", "columns: [{title: a}]\ncards: [{title: x, column: a, due: tomorrow}]"},
		{"unknown column", "columns: [{title: a}]\ncards: [{title: x, column: b}]"},
		{"duplicate column", "columns: [{title: a}, {title: A}]"},
		{"untitled card", "columns: [{title: a}]\ncards: [{title: ' ', column: a}]"},
		{"untitled column", "columns: [{color: red}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml), nil)
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestInitialBoard(t *testing.T) {
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	cfg := Default()
	b, err := cfg.InitialBoard(nil, today)
	require.NoError(t, err)
	assert.Len(t, b.Columns(), 4)
	assert.Equal(t, 6, b.Len())

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o644))
	cfg.Board.SeedFile = path

	b, err = cfg.InitialBoard(board.NewCounterGenerator(1), today)
	require.NoError(t, err)
	assert.Len(t, b.Columns(), 2)

	cfg.Board.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.InitialBoard(nil, today)
	assert.Error(t, err)
}
