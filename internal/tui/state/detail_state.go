package state

import (
	"charm.land/bubbles/v2/viewport"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// DetailState holds the card detail view: which card is shown and the
// scrollable viewport its rendered description lives in
type DetailState struct {
	CardID   types.CardID
	Viewport viewport.Model
}

// NewDetailState creates an empty DetailState
func NewDetailState() *DetailState {
	return &DetailState{Viewport: viewport.New()}
}

// Open shows a card, sizing the viewport and replacing its content
func (s *DetailState) Open(id types.CardID, content string, width, height int) {
	s.CardID = id
	s.Viewport.SetWidth(width)
	s.Viewport.SetHeight(height)
	s.Viewport.SetContent(content)
	s.Viewport.GotoTop()
}

// Close forgets the shown card
func (s *DetailState) Close() {
	s.CardID = ""
	s.Viewport.SetContent("")
}
