package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layers"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ============================================================================
// CARD DETAIL HANDLERS
// ============================================================================

// OpenCardDetail shows a card with its rendered description
func OpenCardDetail(m *tui.Model, id types.CardID) tea.Cmd {
	card, ok := m.App.Card(id)
	if !ok {
		return nil
	}
	column, _ := m.App.Board().Column(card.Column)

	width, height := layers.DialogSize(m.UiState.Width(), m.UiState.Height())
	m.DetailState.Open(id, components.RenderCardDetail(card, column, width), width, height)
	m.UiState.SetMode(state.CardDetailMode)
	return nil
}

// HandleDetailMode closes the detail view, switches to editing, or scrolls
func HandleDetailMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.ViewCard, m.Keys.Quit), msg.String() == "esc":
		m.DetailState.Close()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case key.Matches(msg, m.Keys.EditCard):
		id := m.DetailState.CardID
		m.DetailState.Close()
		return OpenEditCardForm(m, id)
	}

	var cmd tea.Cmd
	m.DetailState.Viewport, cmd = m.DetailState.Viewport.Update(msg)
	return cmd
}
