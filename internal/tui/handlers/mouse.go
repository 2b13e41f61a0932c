package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/tui/layout"
	"github.com/thenoetrevino/swimlane/internal/tui/state"
)

// ============================================================================
// MOUSE DRAG HANDLERS
// ============================================================================

// HandleMouseClick starts dragging the card under the pointer. Clicking the
// "+ Add card" row of a column opens the add card form instead. A drag whose
// release never arrived (pointer let go outside the terminal) is cancelled
// first, so it can't be committed by a later release.
func HandleMouseClick(m *tui.Model, mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	if _, dragging := m.App.Dragging(); dragging {
		CancelDrag(m)
	}
	m.DragState.Move(mouse.X, mouse.Y)
	m.Relayout()

	if id, column, ok := m.Geometry.CardAt(mouse.X, mouse.Y); ok {
		m.UiState.Focus(column, id)
		if err := m.App.DragStart(id); err != nil {
			slog.Debug("drag not started", "card_id", id, "error", err)
			return nil
		}
		updateDragTarget(m, mouse.X, mouse.Y)
		return nil
	}

	if column, ok := m.Geometry.ColumnAt(mouse.X, mouse.Y); ok {
		m.UiState.Focus(column, "")
		if box, ok := m.Geometry.Column(column); ok && mouse.Y == box.EndIndicator+1 {
			return OpenAddCardForm(m, column)
		}
	}
	return nil
}

// HandleMouseMotion moves the drop highlight while dragging and moves focus
// to the hovered card otherwise
func HandleMouseMotion(m *tui.Model, mouse tea.Mouse) tea.Cmd {
	m.DragState.Move(mouse.X, mouse.Y)

	if _, dragging := m.App.Dragging(); !dragging {
		if id, column, ok := m.Geometry.CardAt(mouse.X, mouse.Y); ok {
			m.UiState.Focus(column, id)
		}
		return nil
	}

	updateDragTarget(m, mouse.X, mouse.Y)
	return nil
}

// HandleMouseRelease drops the dragged card on whatever is under the
// pointer: a column slot, the discard target, or nothing (cancel)
func HandleMouseRelease(m *tui.Model, mouse tea.Mouse) tea.Cmd {
	if _, dragging := m.App.Dragging(); !dragging {
		return nil
	}
	m.DragState.Move(mouse.X, mouse.Y)
	updateDragTarget(m, mouse.X, mouse.Y)

	target := m.DragState.Target
	m.DragState.Reset()

	var (
		out drag.Outcome
		err error
	)
	switch {
	case target.Discard:
		out, err = m.App.DropDiscard()
	case target.Column != "":
		out, err = m.App.Drop(target.Column)
	default:
		out, _ = m.App.DragEnd()
	}
	m.Relayout()

	if err != nil {
		slog.Debug("drop ignored", "error", err)
		return nil
	}
	reportOutcome(m, out)
	return nil
}

// CancelDrag abandons the drag in progress, if any
func CancelDrag(m *tui.Model) bool {
	target := m.DragState.Target
	m.DragState.Reset()
	out, ok := m.App.DragEnd()
	if ok {
		slog.Debug("drag cancelled", "card_id", out.CardID, "over", target)
	}
	return ok
}

// updateDragTarget forwards the pointer position to the drag session,
// leaving the previous target before entering a new one
func updateDragTarget(m *tui.Model, x, y int) {
	var target state.Target
	if m.Geometry.InDiscard(x, y) {
		target.Discard = true
	} else if column, ok := m.Geometry.ColumnAt(x, y); ok {
		target.Column = column
	}

	prev := m.DragState.Target
	if prev.Column != "" && prev.Column != target.Column {
		logIgnored("drag leave", m.App.DragLeave(prev.Column))
	}
	if prev.Discard && !target.Discard {
		logIgnored("leave discard", m.App.LeaveDiscard())
	}

	switch {
	case target.Discard && !prev.Discard:
		logIgnored("enter discard", m.App.EnterDiscard())
	case target.Column != "":
		_, err := m.App.DragOver(target.Column, layout.PointerY(y, m.Config.Board.RowUnits))
		logIgnored("drag over", err)
		m.UiState.Focus(target.Column, m.UiState.FocusedCard())
	}

	m.DragState.Target = target
}

// reportOutcome surfaces failed drops. Redundant moves are silent.
func reportOutcome(m *tui.Model, out drag.Outcome) {
	if out.Err == nil || errors.Is(out.Err, board.ErrRedundantMove) {
		return
	}
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelError, out.Err.Error())
}

func logIgnored(step string, err error) {
	if err != nil {
		slog.Debug("drag event ignored", "step", step, "error", err)
	}
}
