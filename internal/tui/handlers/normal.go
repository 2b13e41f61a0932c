package handlers

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
// Cards are reordered with the mouse only; keys move focus and open forms.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.UiState.SetMode(state.HelpMode)
		return nil
	case key.Matches(msg, k.CancelDrag):
		return handleCancel(m)
	case key.Matches(msg, k.AddCard):
		return handleAddCard(m)
	case key.Matches(msg, k.EditCard):
		return handleEditCard(m)
	case key.Matches(msg, k.ViewCard):
		return OpenCardDetail(m, m.UiState.FocusedCard())
	case key.Matches(msg, k.AddColumn):
		return OpenAddColumnForm(m)
	case key.Matches(msg, k.Search):
		return HandleEnterSearch(m)
	case key.Matches(msg, k.Left):
		focusColumnBy(m, -1)
	case key.Matches(msg, k.Right):
		focusColumnBy(m, 1)
	case key.Matches(msg, k.Up):
		focusCardBy(m, -1)
	case key.Matches(msg, k.Down):
		focusCardBy(m, 1)
	}
	return nil
}

// handleCancel abandons a drag in progress, or clears the search and
// notifications when nothing is being dragged
func handleCancel(m *tui.Model) tea.Cmd {
	if CancelDrag(m) {
		m.Relayout()
		return nil
	}
	if m.SearchState.Filtering() {
		m.SearchState.Clear()
	}
	m.NotificationState.Clear()
	return nil
}

func handleAddCard(m *tui.Model) tea.Cmd {
	column := m.UiState.FocusedColumn()
	if column == "" {
		cols := m.Geometry.Columns
		if len(cols) == 0 {
			return nil
		}
		column = cols[0].Column.Key
	}
	return OpenAddCardForm(m, column)
}

func handleEditCard(m *tui.Model) tea.Cmd {
	id := m.UiState.FocusedCard()
	if id == "" {
		return nil
	}
	return OpenEditCardForm(m, id)
}

// focusColumnBy moves focus delta columns left or right, landing on the
// first card of the new column
func focusColumnBy(m *tui.Model, delta int) {
	cols := m.Geometry.Columns
	if len(cols) == 0 {
		return
	}

	i := focusedColumnIndex(m)
	switch {
	case i < 0:
		i = 0
	default:
		i = min(max(i+delta, 0), len(cols)-1)
	}

	col := cols[i]
	var card types.CardID
	if len(col.Cards) > 0 {
		card = col.Cards[0].ID
	}
	m.UiState.Focus(col.Column.Key, card)
}

// focusCardBy moves focus delta cards up or down within the focused column
func focusCardBy(m *tui.Model, delta int) {
	i := focusedColumnIndex(m)
	if i < 0 {
		focusColumnBy(m, 0)
		return
	}

	col := m.Geometry.Columns[i]
	if len(col.Cards) == 0 {
		return
	}

	j := slices.IndexFunc(col.Cards, func(c layout.CardBox) bool {
		return c.ID == m.UiState.FocusedCard()
	})
	if j < 0 {
		j = 0
	} else {
		j = min(max(j+delta, 0), len(col.Cards)-1)
	}
	m.UiState.Focus(col.Column.Key, col.Cards[j].ID)
}

func focusedColumnIndex(m *tui.Model) int {
	return slices.IndexFunc(m.Geometry.Columns, func(c layout.ColumnBox) bool {
		return c.Column.Key == m.UiState.FocusedColumn()
	})
}
