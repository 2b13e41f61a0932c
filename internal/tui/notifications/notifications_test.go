package notifications

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

func TestRender_IconPerLevel(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		want  string
	}{
		{state.LevelInfo, "● Added column Review"},
		{state.LevelMoved, "⇄ Added column Review"},
		{state.LevelDiscarded, "▼ Added column Review"},
		{state.LevelError, "✕ Added column Review"},
	}

	for _, tt := range tests {
		got := ansi.Strip(Render(state.Notification{Level: tt.level, Message: "Added column Review"}))
		assert.Equal(t, " "+tt.want+" ", got)
	}
}
