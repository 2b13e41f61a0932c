package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	// Start listening for board events on first update if not already started
	var cmd tea.Cmd
	if m.EventChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		cmd = ListenForEvents(m)
	}

	switch msg := msg.(type) {
	case tui.BoardEventMsg:
		HandleBoardEvent(m, msg.Event)
		return ListenForEvents(m)

	case tea.WindowSizeMsg:
		return tea.Batch(cmd, HandleWindowResize(m, msg))
	}

	// Forms need every other message, not just keys
	switch m.UiState.Mode() {
	case state.AddCardMode, state.AddColumnMode, state.EditCardMode:
		return tea.Batch(cmd, HandleFormMode(m, msg))
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return tea.Batch(cmd, HandleKeyMsg(m, msg))

	case tea.MouseClickMsg:
		return tea.Batch(cmd, HandleMouseClick(m, msg.Mouse()))

	case tea.MouseMotionMsg:
		return tea.Batch(cmd, HandleMouseMotion(m, msg.Mouse()))

	case tea.MouseReleaseMsg:
		return tea.Batch(cmd, HandleMouseRelease(m, msg.Mouse()))
	}

	return cmd
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.CardDetailMode:
		return HandleDetailMode(m, msg)
	case state.SearchMode:
		return HandleSearchMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.Relayout()
	return nil
}

// ListenForEvents returns a command that waits for the next board event.
func ListenForEvents(m *tui.Model) tea.Cmd {
	if m.EventChan == nil {
		return nil
	}

	ch := m.EventChan
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			slog.Info("board event channel closed")
			return nil
		}
		return tui.BoardEventMsg{Event: e}
	}
}
