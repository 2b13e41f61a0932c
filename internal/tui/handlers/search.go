package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// HandleEnterSearch enters search mode and clears any previous search state.
func HandleEnterSearch(m *tui.Model) tea.Cmd {
	m.SearchState.Clear()
	m.UiState.SetMode(state.SearchMode)
	return nil
}

// HandleSearchMode handles keyboard input in search mode.
func HandleSearchMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		// The query keeps dimming cards after the prompt closes
		m.SearchState.Activate()
		m.UiState.SetMode(state.NormalMode)
	case "esc":
		m.SearchState.Clear()
		m.UiState.SetMode(state.NormalMode)
	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			executeSearch(m)
		}
	default:
		if msg.Text != "" && m.SearchState.AppendChar(msg.Text) {
			executeSearch(m)
		}
	}
	return nil
}

// executeSearch matches the query against every card on the board
func executeSearch(m *tui.Model) {
	m.SearchState.Recompute(m.App.Cards())
}
