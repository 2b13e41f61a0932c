package app

import (
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Drag protocol. The presentation layer forwards pointer events here; only
// Drop and DropDiscard touch the board.

// DragStart begins dragging a card that is on the board
func (a *App) DragStart(id types.CardID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.board.Card(id); !ok {
		a.noOp("drag start", board.ErrCardNotFound, "card_id", id)
		return board.ErrCardNotFound
	}
	if err := a.session.Start(id); err != nil {
		return err
	}
	a.logger.Debug("drag started", "card_id", id)
	return nil
}

// DragOver updates the highlighted slot for a pointer over column
func (a *App) DragOver(column types.ColumnKey, y float64) (slots.Slot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Over(column, y)
}

// DragLeave clears the highlight when the pointer leaves column
func (a *App) DragLeave(column types.ColumnKey) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Leave(column)
}

// EnterDiscard marks the pointer as over the discard target
func (a *App) EnterDiscard() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.EnterDiscard()
}

// LeaveDiscard marks the pointer as no longer over the discard target
func (a *App) LeaveDiscard() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.LeaveDiscard()
}

// Drop commits the drag into column at the highlighted slot
func (a *App) Drop(column types.ColumnKey) (drag.Outcome, error) {
	var out drag.Outcome
	err := a.mutate(func() error {
		var err error
		out, err = a.session.Drop(column, committer{a})
		if err == nil {
			a.logger.Debug("drag dropped", "card_id", out.CardID, "outcome", out.Kind, "column", column)
		}
		return err
	})
	return out, err
}

// DropDiscard removes the dragged card
func (a *App) DropDiscard() (drag.Outcome, error) {
	var out drag.Outcome
	err := a.mutate(func() error {
		var err error
		out, err = a.session.DropDiscard(committer{a})
		if err == nil {
			a.logger.Debug("drag discarded", "card_id", out.CardID, "outcome", out.Kind)
		}
		return err
	})
	return out, err
}

// DragEnd abandons the drag without touching the board
func (a *App) DragEnd() (drag.Outcome, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out, ok := a.session.End()
	if ok {
		a.logger.Debug("drag cancelled", "card_id", out.CardID)
	}
	return out, ok
}

// Dragging returns the dragged card, if any
func (a *App) Dragging() (types.CardID, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.CardID()
}

// Highlight returns the highlighted slot, if any
func (a *App) Highlight() (slots.Slot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Highlight()
}

// OverDiscard reports whether the pointer is over the discard target
func (a *App) OverDiscard() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.OverDiscard()
}

// committer lets the session commit while the controller already holds its lock
type committer struct {
	a *App
}

func (c committer) MoveCard(id, beforeID types.CardID, column types.ColumnKey) error {
	return c.a.moveCard(id, beforeID, column)
}

func (c committer) RemoveCard(id types.CardID) error {
	return c.a.removeCard(id)
}
