package tui

import (
	"context"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// eventBuffer bounds how many board events wait for the UI to pick them up
const eventBuffer = 64

// Model represents the application state for the TUI. The board itself lives
// in the controller; the model only holds what the terminal needs on top.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Keys   KeyMap

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	SearchState       *state.SearchState
	DragState         *state.DragState
	DetailState       *state.DetailState

	// Geometry is the layout of the last measured board
	Geometry layout.Geometry

	// EventChan receives the controller's change events
	EventChan           chan events.Event
	SubscriptionStarted bool
	unsubscribe         func()
}

// InitialModel creates the TUI model over a board controller
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		SearchState:       state.NewSearchState(),
		DragState:         state.NewDragState(),
		DetailState:       state.NewDetailState(),
		EventChan:         make(chan events.Event, eventBuffer),
	}

	// Subscribers run on the goroutine that changed the board, which is
	// the update loop itself, so the send must never block.
	ch := m.EventChan
	m.unsubscribe = a.Subscribe(func(e events.Event) {
		select {
		case ch <- e:
		default:
		}
	})

	m.Relayout()
	return m
}

// Relayout measures the current board and registers its drop slots. Call it
// after anything that moves cards or resizes the terminal.
func (m *Model) Relayout() {
	m.Geometry = layout.Measure(m.App.Board(), m.UiState.ContentHeight())
	m.Geometry.Register(m.App.Slots(), m.Config.Board.RowUnits)
}

// Close stops listening for board events
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
