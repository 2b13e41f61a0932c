package replay

import (
	"errors"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/slots"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Result records what one step did. Refused commands are results, not
// failures: the board simply stays as it was.
type Result struct {
	Step    int    `json:"step"`
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

// Runner feeds a script through a board controller
type Runner struct {
	app    *app.App
	script Script
}

// NewRunner prepares a script for a
func NewRunner(a *app.App, s Script) *Runner {
	if s.CardHeight <= 0 {
		s.CardHeight = DefaultCardHeight
	}
	return &Runner{app: a, script: s}
}

// Run executes every step in order
func (r *Runner) Run() []Result {
	results := make([]Result, 0, len(r.script.Steps))
	for i, step := range r.script.Steps {
		action, _ := step.Action()
		res := Result{Step: i + 1, Action: action}
		res.Outcome, res.Detail = r.apply(action, step)
		results = append(results, res)
	}
	return results
}

func (r *Runner) apply(action string, s Step) (string, string) {
	a := r.app
	switch action {
	case "start":
		return outcome(a.DragStart(types.CardID(s.Start)))
	case "over":
		if !r.script.ManualLayout {
			Layout(a, types.ColumnKey(s.Over.Column), r.script.CardHeight)
		}
		slot, err := a.DragOver(types.ColumnKey(s.Over.Column), s.Over.Y)
		if err != nil {
			return outcome(err)
		}
		return "highlighted", "before " + slot.BeforeID.String()
	case "leave":
		return outcome(a.DragLeave(types.ColumnKey(s.Leave)))
	case "drop":
		out, err := a.Drop(types.ColumnKey(s.Drop))
		if err != nil {
			return outcome(err)
		}
		if out.Err != nil {
			return out.Kind.String(), out.Err.Error()
		}
		return out.Kind.String(), "card " + out.CardID.String() + " before " + out.BeforeID.String()
	case "discard":
		if err := a.EnterDiscard(); err != nil {
			return outcome(err)
		}
		out, err := a.DropDiscard()
		if err != nil {
			return outcome(err)
		}
		if out.Err != nil {
			return out.Kind.String(), out.Err.Error()
		}
		return out.Kind.String(), "card " + out.CardID.String()
	case "end":
		if out, ok := a.DragEnd(); ok {
			return out.Kind.String(), "card " + out.CardID.String()
		}
		return "ignored", "no drag in progress"
	case "register":
		reg := s.Register
		before := types.CardID(reg.Before)
		if before == "" {
			before = types.EndOfColumn
		}
		a.Slots().Register(types.ColumnKey(reg.Column), before, slots.Extent{Top: reg.Top, Height: reg.Height})
		return "ok", ""
	case "add_card":
		card, err := a.AddCard(types.ColumnKey(s.AddCard.Column), s.AddCard.Title)
		if err != nil {
			return outcome(err)
		}
		return "ok", "card " + card.ID.String()
	case "add_column":
		col, err := a.CreateColumn(s.AddColumn.Title, s.AddColumn.Color)
		if err != nil {
			return outcome(err)
		}
		return "ok", "column " + col.Key.String()
	case "remove":
		return outcome(a.RemoveCard(types.CardID(s.Remove)))
	case "move":
		before := types.CardID(s.Move.Before)
		if before == "" {
			before = types.EndOfColumn
		}
		return outcome(a.MoveCard(types.CardID(s.Move.Card), before, types.ColumnKey(s.Move.Column)))
	case "edit":
		return outcome(r.edit(s.Edit))
	}
	return "ignored", "unknown action"
}

func (r *Runner) edit(e *EditStep) error {
	id := types.CardID(e.Card)
	var errs []error
	if e.Priority != nil {
		errs = append(errs, r.app.EditPriority(id, *e.Priority))
	}
	if e.Assignees != nil {
		errs = append(errs, r.app.EditAssignees(id, *e.Assignees))
	}
	if e.Due != nil {
		errs = append(errs, r.app.EditDueDate(id, *e.Due))
	}
	if e.Description != nil {
		errs = append(errs, r.app.EditDescription(id, *e.Description))
	}
	return errors.Join(errs...)
}

func outcome(err error) (string, string) {
	if err != nil {
		return "ignored", err.Error()
	}
	return "ok", ""
}

// Layout registers a uniform slot for every card of column, then the
// trailing end-of-column slot, replacing whatever the column had
func Layout(a *app.App, column types.ColumnKey, cardHeight float64) {
	registry := a.Slots()
	registry.Reset(column)

	cards := a.CardsInColumn(column)
	for i, c := range cards {
		registry.Register(column, c.ID, slots.Extent{Top: float64(i) * cardHeight, Height: cardHeight})
	}
	registry.Register(column, types.EndOfColumn, slots.Extent{Top: float64(len(cards)) * cardHeight, Height: cardHeight})
}
