package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/config/colors"
)

// FormPurpose picks the accent a form is drawn with, matching the border of
// the dialog it sits in
type FormPurpose int

const (
	ForCreate FormPurpose = iota
	ForEdit
)

// Theme builds the huh theme for a dialog. Selection markers and the text
// cursor use the drop indicator color, so the board's "you are here" color
// reads the same inside forms.
func Theme(scheme colors.ColorScheme, purpose FormPurpose) huh.Theme {
	accent := lipgloss.Color(scheme.Create)
	if purpose == ForEdit {
		accent = lipgloss.Color(scheme.Edit)
	}
	marker := lipgloss.Color(scheme.Indicator)
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)
	refused := lipgloss.Color(scheme.Delete)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(refused)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(refused)

		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(marker)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)

		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(marker)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}

// descriptionKeyMap lets the description field take newlines. The external
// editor binding is off because the board owns the alt screen.
func descriptionKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Text.Editor = key.NewBinding(key.WithDisabled())
	return km
}
