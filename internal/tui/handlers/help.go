package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// HandleHelpMode handles input in the help screen.
func HandleHelpMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Help, m.Keys.Quit):
		m.UiState.SetMode(state.NormalMode)
	default:
		switch msg.String() {
		case "esc", "enter", "space":
			m.UiState.SetMode(state.NormalMode)
		}
	}
	return nil
}
