package board

import (
	"time"

	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Seed column keys
const (
	ColumnBacklog types.ColumnKey = "backlog"
	ColumnTodo    types.ColumnKey = "todo"
	ColumnDoing   types.ColumnKey = "doing"
	ColumnDone    types.ColumnKey = "done"
)

const seedDescription = "This is a description of the card"

// DefaultColumns returns the columns every new session starts with
func DefaultColumns() []models.Column {
	return []models.Column{
		{Title: "Backlog", Key: ColumnBacklog, HeadingColor: models.ColorNeutral},
		{Title: "TODO", Key: ColumnTodo, HeadingColor: models.ColorYellow},
		{Title: "In progress", Key: ColumnDoing, HeadingColor: models.ColorBlue},
		{Title: "Complete", Key: ColumnDone, HeadingColor: models.ColorEmerald},
	}
}

// DefaultCards returns the starting cards, all due on the given day
func DefaultCards(today time.Time) []models.Card {
	due := func() *time.Time {
		d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		return &d
	}

	return []models.Card{
		{
			ID: "1", Title: "Look into render bug in dashboard", Column: ColumnBacklog,
			Priority: models.PriorityLow, Assignees: []string{"Tejas"},
			DueDate: due(), Status: models.DefaultStatus, Description: seedDescription,
		},
		{
			ID: "2", Title: "SOX compliance checklist", Column: ColumnBacklog,
			Priority: models.PriorityMedium, Assignees: []string{"Anurag"},
			DueDate: due(), Status: models.DefaultStatus, Description: seedDescription,
		},
		{
			ID: "3", Title: "[SPIKE] Migrate to Azure", Column: ColumnBacklog,
			Priority: models.PriorityHigh, Assignees: []string{"Tejas", "Suraj", "Jane"},
			DueDate: due(), Status: models.DefaultStatus, Description: seedDescription,
		},
		{
			ID: "4", Title: "Document Notifications service", Column: ColumnBacklog,
			Priority: models.PriorityUrgent, Assignees: []string{"John", "Jane"},
			DueDate: due(), Status: models.DefaultStatus,
		},
		{
			ID: "5", Title: "Research DB options for new microservice", Column: ColumnTodo,
			Priority: models.PriorityLow, Assignees: []string{"Tejas", "John", "Jane"},
			DueDate: due(), Status: models.DefaultStatus, Description: seedDescription,
		},
		{
			ID: "6", Title: "Postmortem for outage", Column: ColumnTodo,
			Priority: models.PriorityMedium, Assignees: []string{"John", "Jane"},
			DueDate: due(), Status: models.DefaultStatus, Description: seedDescription,
		},
	}
}

// Seed returns the default board for a new session
func Seed(ids IDGenerator, today time.Time) Board {
	b, err := New(DefaultColumns(), DefaultCards(today), ids)
	if err != nil {
		// The built-in seed always satisfies the board invariants
		panic(err)
	}
	return b
}
