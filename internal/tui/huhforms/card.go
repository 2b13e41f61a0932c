package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// CreateCardForm creates a huh form for adding a card to a column. Only the
// title is asked for; new cards start at low priority with nothing else set.
func CreateCardForm(columnTitle string, title *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("New card in " + columnTitle).
			Placeholder("Enter card title...").
			CharLimit(models.MaxTitleLength).
			Validate(notBlank("card title")).
			Value(title),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
