package state

import "github.com/thenoetrevino/swimlane/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode     Mode = iota // Board with mouse dragging
	AddCardMode                // Add card form
	AddColumnMode              // Add column form
	EditCardMode               // Edit card form
	CardDetailMode             // Read-only card view with rendered description
	SearchMode                 // Typing a search query (/)
	HelpMode                   // Displaying help screen
)

// UIState manages the user interface state: terminal dimensions, the
// current mode and which card has focus.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// focusedColumn is the column under the pointer or picked with the keyboard
	focusedColumn types.ColumnKey

	// focusedCard is the card under the pointer or picked with the keyboard
	focusedCard types.CardID
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board.
// This is terminal height minus title bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const titleBarHeight = 1
	const statusBarHeight = 1
	return max(s.height-titleBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// FocusedColumn returns the focused column key (empty when none)
func (s *UIState) FocusedColumn() types.ColumnKey {
	return s.focusedColumn
}

// FocusedCard returns the focused card id (empty when none)
func (s *UIState) FocusedCard() types.CardID {
	return s.focusedCard
}

// Focus sets the focused column and card. An empty card focuses the column only.
func (s *UIState) Focus(column types.ColumnKey, card types.CardID) {
	s.focusedColumn = column
	s.focusedCard = card
}
