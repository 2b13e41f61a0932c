package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true                    // Use alternate screen buffer
	view.MouseMode = tea.MouseModeAllMotion // Motion events drive the drop highlight

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: the board is always the base, modals and the
	// dragged card float above it
	layers := BoardLayers(m)

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddCardMode:
		modalLayer = RenderFormLayer(m, m.FormState.CardForm, formCreate)
	case state.AddColumnMode:
		modalLayer = RenderFormLayer(m, m.FormState.ColumnForm, formCreate)
	case state.EditCardMode:
		modalLayer = RenderFormLayer(m, m.FormState.EditForm, formEdit)
	case state.CardDetailMode:
		modalLayer = RenderDetailLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	if ghost := RenderDragLayer(m); ghost != nil {
		layers = append(layers, ghost)
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}
