package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/swimlane/internal/config"
)

// KeyMap holds the board's key bindings, built from the configured mappings.
// It satisfies help.KeyMap so the status bar and help screen list it.
type KeyMap struct {
	AddCard    key.Binding
	EditCard   key.Binding
	ViewCard   key.Binding
	AddColumn  key.Binding
	CancelDrag key.Binding
	Search     key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Focus movement; cards are only reordered with the mouse
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// NewKeyMap builds the bindings from the configured key mappings
func NewKeyMap(k config.KeyMappings) KeyMap {
	return KeyMap{
		AddCard:    key.NewBinding(key.WithKeys(k.AddCard), key.WithHelp(k.AddCard, "add card")),
		EditCard:   key.NewBinding(key.WithKeys(k.EditCard), key.WithHelp(k.EditCard, "edit card")),
		ViewCard:   key.NewBinding(key.WithKeys(k.ViewCard), key.WithHelp(k.ViewCard, "view card")),
		AddColumn:  key.NewBinding(key.WithKeys(k.AddColumn), key.WithHelp(k.AddColumn, "add column")),
		CancelDrag: key.NewBinding(key.WithKeys(k.CancelDrag), key.WithHelp(k.CancelDrag, "cancel drag")),
		Search:     key.NewBinding(key.WithKeys(k.Search), key.WithHelp(k.Search, "search")),
		Help:       key.NewBinding(key.WithKeys(k.ShowHelp), key.WithHelp(k.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "focus up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "focus down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "focus left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "focus right")),
	}
}

// ShortHelp lists the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddCard, k.ViewCard, k.Search, k.Help, k.Quit}
}

// FullHelp lists every binding, grouped for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddCard, k.EditCard, k.ViewCard},
		{k.AddColumn, k.CancelDrag, k.Search},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
