package config

// KeyMappings defines all configurable key bindings. Card and column
// reordering is done with the mouse only; keys open forms and views.
type KeyMappings struct {
	// Cards
	AddCard  string `yaml:"add_card"`
	EditCard string `yaml:"edit_card"`
	ViewCard string `yaml:"view_card"`

	// Columns
	AddColumn string `yaml:"add_column"`

	// Drag
	CancelDrag string `yaml:"cancel_drag"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:  "a",
		EditCard: "e",
		ViewCard: "space",

		// Columns
		AddColumn: "C",

		// Drag
		CancelDrag: "esc",

		// Other
		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = defaults.EditCard
	}
	if k.ViewCard == "" {
		k.ViewCard = defaults.ViewCard
	}
	if k.AddColumn == "" {
		k.AddColumn = defaults.AddColumn
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
