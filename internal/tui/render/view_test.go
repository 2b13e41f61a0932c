package render

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/testutil"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/handlers"
)

func newTestModel(t *testing.T, width, height int) *tui.Model {
	t.Helper()
	m := tui.InitialModel(context.Background(), testutil.NewTestApp(t), config.Default())
	t.Cleanup(m.Close)
	if width > 0 {
		handlers.Update(&m, tea.WindowSizeMsg{Width: width, Height: height})
	}
	return &m
}

func plain(v tea.View) string {
	return ansi.Strip(v.Content)
}

func TestView_LoadingBeforeResize(t *testing.T) {
	m := newTestModel(t, 0, 0)

	v := View(m)

	assert.Equal(t, "Loading...", v.Content)
	assert.True(t, v.AltScreen)
}

func TestView_Board(t *testing.T) {
	m := newTestModel(t, 200, 40)

	v := View(m)
	out := plain(v)

	assert.Equal(t, tea.MouseModeAllMotion, v.MouseMode)
	assert.Contains(t, out, "Backlog (4)")
	assert.Contains(t, out, "TODO (2)")
	assert.Contains(t, out, "In progress (0)")
	assert.Contains(t, out, "Postmortem for outage")
	assert.Contains(t, out, "Tejas, Suraj, Jane")
	assert.Contains(t, out, "✕ Discard")
	assert.Contains(t, out, "6 cards in 4 columns")
}

func TestView_DragShowsIndicatorAndGhost(t *testing.T) {
	m := newTestModel(t, 200, 40)

	handlers.Update(m, tea.MouseClickMsg{X: 5, Y: 19, Button: tea.MouseLeft})
	handlers.Update(m, tea.MouseMotionMsg{X: 5, Y: 11, Button: tea.MouseLeft})

	out := plain(View(m))
	assert.Contains(t, out, "━━━━━━━━━━")
	assert.Contains(t, out, "drop a card here")

	// Bottom border of the discard target keeps the ghost clear of its text
	handlers.Update(m, tea.MouseMotionMsg{X: 128, Y: 7, Button: tea.MouseLeft})
	assert.Contains(t, plain(View(m)), "release to delete")
}

func TestView_Modals(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		m := newTestModel(t, 200, 40)
		handlers.Update(m, tea.KeyPressMsg{Code: '?', Text: "?"})
		assert.Contains(t, plain(View(m)), "Keyboard Shortcuts")
	})

	t.Run("add column form", func(t *testing.T) {
		m := newTestModel(t, 200, 40)
		handlers.Update(m, tea.KeyPressMsg{Code: 'C', Text: "C"})
		require.NotNil(t, m.FormState.ColumnForm)
		assert.Contains(t, plain(View(m)), "esc: cancel")
	})

	t.Run("search prompt", func(t *testing.T) {
		m := newTestModel(t, 200, 40)
		handlers.Update(m, tea.KeyPressMsg{Code: '/', Text: "/"})
		handlers.Update(m, tea.KeyPressMsg{Code: 'b', Text: "b"})
		assert.Contains(t, plain(View(m)), "/b_")
	})
}
