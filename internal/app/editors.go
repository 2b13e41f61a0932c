package app

import (
	"strings"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Editor commands take raw form input, parse it, and apply a single field
// update. Parse failures change nothing.

// ParseAssignees splits a comma separated list, trimming names and dropping
// empty entries
func ParseAssignees(raw string) []string {
	assignees := []string{}
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			assignees = append(assignees, name)
		}
	}
	return assignees
}

// EditPriority sets a card's priority from its name
func (a *App) EditPriority(id types.CardID, raw string) error {
	p, err := models.ParsePriority(raw)
	if err != nil {
		a.noOp("edit priority", err, "card_id", id)
		return err
	}
	return a.UpdateCardField(id, board.PriorityUpdate(p))
}

// EditAssignees replaces a card's assignees from a comma separated list
func (a *App) EditAssignees(id types.CardID, raw string) error {
	return a.UpdateCardField(id, board.AssigneesUpdate(ParseAssignees(raw)))
}

// EditDueDate sets a card's due date from YYYY-MM-DD; empty input clears it
func (a *App) EditDueDate(id types.CardID, raw string) error {
	due, err := models.ParseDueDate(raw)
	if err != nil {
		a.noOp("edit due date", err, "card_id", id)
		return err
	}
	return a.UpdateCardField(id, board.DueDateUpdate(due))
}

// EditDescription replaces a card's description
func (a *App) EditDescription(id types.CardID, text string) error {
	return a.UpdateCardField(id, board.DescriptionUpdate(text))
}

// CreateColumn adds a column from a title and a color name; unknown colors
// fall back to neutral
func (a *App) CreateColumn(title, color string) (models.Column, error) {
	return a.AddColumn(title, models.ParseColorToken(color))
}
