package render

import (
	"charm.land/bubbles/v2/help"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layers"
)

type formKind int

const (
	formCreate formKind = iota
	formEdit
)

// RenderFormLayer renders an open huh form in a centered dialog. Create
// forms get a green border, edit forms a blue one.
func RenderFormLayer(m *tui.Model, form *huh.Form, kind formKind) *lipgloss.Layer {
	if form == nil {
		return nil
	}

	style := components.CreateBoxStyle
	if kind == formEdit {
		style = components.EditBoxStyle
	}

	width, _ := layers.DialogSize(m.UiState.Width(), m.UiState.Height())
	hint := components.SubtleStyle.Render("enter: next · esc: cancel")
	content := lipgloss.JoinVertical(lipgloss.Left, form.View(), "", hint)

	box := style.Width(width + layers.DialogChromeWidth).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the card detail viewport in a centered dialog
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	if m.DetailState.CardID == "" {
		return nil
	}

	hint := components.SubtleStyle.Render("↑/↓: scroll · e: edit · esc: close")
	content := lipgloss.JoinVertical(lipgloss.Left, m.DetailState.Viewport.View(), "", hint)

	box := components.DetailBoxStyle.Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders every key binding in a centered dialog
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render("Keyboard Shortcuts"),
		"",
		help.New().FullHelpView(m.Keys.FullHelp()),
		"",
		components.SubtleStyle.Render("Drag a card with the mouse to move it."),
		components.SubtleStyle.Render("Drop it on Discard to delete it."),
		"",
		components.SubtleStyle.Render("Press any key to close"),
	)

	box := components.HelpBoxStyle.Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
