package app

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// App is the board controller. It owns the current board value, the slot
// registry filled by the presentation layer and the drag session, and is the
// only place the board is replaced.
//
// Every command runs under one mutex and swaps the board value as a whole, so
// readers always see either the state before or after a mutation. Commands
// that change nothing return the board package's no-op errors and publish no
// event. Events are published after the lock is released, so subscribers may
// query the controller.
type App struct {
	mu      sync.Mutex
	board   board.Board
	slots   *slots.Registry
	session *drag.Session
	pending []events.Event

	eventClient events.EventPublisher
	logger      *slog.Logger
}

// New creates a controller starting from initial
func New(initial board.Board, opts ...Option) *App {
	cfg := &appConfig{offset: slots.ActivationOffset}
	for _, opt := range opts {
		opt(cfg)
	}

	registry := cfg.registry
	if registry == nil {
		registry = slots.NewRegistry(cfg.offset)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := cfg.eventClient
	if publisher == nil {
		publisher = events.NewBus()
	}

	return &App{
		board:       initial,
		slots:       registry,
		session:     drag.NewSession(registry),
		eventClient: publisher,
		logger:      logger,
	}
}

// Subscribe registers fn for every change committed after this call
func (a *App) Subscribe(fn func(events.Event)) (unsubscribe func()) {
	return a.eventClient.Subscribe(fn)
}

// Slots returns the registry the presentation layer records slot extents in
func (a *App) Slots() *slots.Registry {
	return a.slots
}

// ============================================================================
// Queries
// ============================================================================

// Board returns the current board value
func (a *App) Board() board.Board {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.board
}

// Columns returns the columns in display order
func (a *App) Columns() []models.Column {
	return a.Board().Columns()
}

// Cards returns every card in flat order
func (a *App) Cards() []models.Card {
	return a.Board().Cards()
}

// CardsInColumn returns the cards of one column in display order
func (a *App) CardsInColumn(key types.ColumnKey) []models.Card {
	return a.Board().CardsInColumn(key)
}

// Card looks up one card
func (a *App) Card(id types.CardID) (models.Card, bool) {
	return a.Board().Card(id)
}

// ============================================================================
// Commands
// ============================================================================

// AddCard creates a card at the end of column
func (a *App) AddCard(column types.ColumnKey, title string) (models.Card, error) {
	var card models.Card
	err := a.mutate(func() error {
		next, c, err := a.board.AddCard(column, title)
		if err != nil {
			a.noOp("add card", err, "column", column)
			return err
		}
		a.board = next
		card = c

		a.logger.Info("card added", "card_id", card.ID, "column", column)
		a.queue(events.Event{Type: events.EventCardAdded, CardID: card.ID, Column: column})
		return nil
	})
	return card, err
}

// RemoveCard deletes a card
func (a *App) RemoveCard(id types.CardID) error {
	return a.mutate(func() error {
		return a.removeCard(id)
	})
}

// MoveCard moves a card into column, before beforeID or to the end when
// beforeID is types.EndOfColumn
func (a *App) MoveCard(id, beforeID types.CardID, column types.ColumnKey) error {
	return a.mutate(func() error {
		return a.moveCard(id, beforeID, column)
	})
}

// UpdateCardField replaces one field of a card
func (a *App) UpdateCardField(id types.CardID, u board.FieldUpdate) error {
	return a.mutate(func() error {
		next, err := a.board.UpdateCardField(id, u)
		if err != nil {
			a.noOp("update card", err, "card_id", id, "field", u.Field)
			return err
		}
		a.board = next

		a.logger.Info("card updated", "card_id", id, "field", u.Field)
		a.queue(events.Event{Type: events.EventCardUpdated, CardID: id, Field: u.Field.String()})
		return nil
	})
}

// AddColumn appends a column
func (a *App) AddColumn(title string, color models.ColorToken) (models.Column, error) {
	var col models.Column
	err := a.mutate(func() error {
		next, c, err := a.board.AddColumn(title, color)
		if err != nil {
			a.noOp("add column", err, "title", title)
			return err
		}
		a.board = next
		col = c

		a.logger.Info("column added", "column", col.Key, "color", col.HeadingColor)
		a.queue(events.Event{Type: events.EventColumnAdded, Column: col.Key})
		return nil
	})
	return col, err
}

func (a *App) removeCard(id types.CardID) error {
	next, err := a.board.RemoveCard(id)
	if err != nil {
		a.noOp("remove card", err, "card_id", id)
		return err
	}
	a.board = next

	a.logger.Info("card removed", "card_id", id)
	a.queue(events.Event{Type: events.EventCardRemoved, CardID: id})
	return nil
}

func (a *App) moveCard(id, beforeID types.CardID, column types.ColumnKey) error {
	next, err := a.board.MoveCard(id, beforeID, column)
	if err != nil {
		a.noOp("move card", err, "card_id", id, "before_id", beforeID, "column", column)
		return err
	}
	a.board = next

	a.logger.Info("card moved", "card_id", id, "before_id", beforeID, "column", column)
	a.queue(events.Event{Type: events.EventCardMoved, CardID: id, Column: column, BeforeID: beforeID})
	return nil
}

// noOp logs a command the board refused. Refusals are expected during normal
// use, so only unexpected errors are logged above debug.
func (a *App) noOp(op string, err error, args ...any) {
	args = append(args, "error", err)
	if board.IsNoOp(err) || errors.Is(err, models.ErrInvalidPriority) || errors.Is(err, models.ErrInvalidDate) {
		a.logger.Debug(op+" ignored", args...)
		return
	}
	a.logger.Error(op+" failed", args...)
}

// mutate runs fn under the lock, then publishes whatever it queued
func (a *App) mutate(fn func() error) error {
	pending, err := a.locked(fn)
	for _, e := range pending {
		a.eventClient.Publish(e)
	}
	return err
}

// locked runs fn while holding the lock and hands back the events it queued
func (a *App) locked(fn func() error) ([]events.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = nil
	err := fn()
	pending := a.pending
	a.pending = nil
	return pending, err
}

// queue records an event for publication once the lock is released
func (a *App) queue(e events.Event) {
	a.pending = append(a.pending, e)
}
