package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/handlers"
	"github.com/thenoetrevino/swimlane/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates updates to the handlers package and drawing to render.
type App struct {
	model *tui.Model
}

// New creates a new App over a board controller.
// This is the constructor that should be used instead of tui.InitialModel.
func New(ctx context.Context, a *app.App, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, a, cfg)
	return &App{model: &model}
}

// Init starts listening for board events.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	a.model.SubscriptionStarted = true
	return handlers.ListenForEvents(a.model)
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// Close stops the model's board subscription
func (a *App) Close() {
	a.model.Close()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
