package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// CreateEditCardForm creates a huh form for the editable card fields:
// priority, assignees, due date and description. The form uses pointers to
// update values in place.
func CreateEditCardForm(
	cardTitle string,
	priority *string,
	assignees *string,
	dueDate *string,
	description *string,
	descriptionLines int,
) *huh.Form {
	priorities := make([]huh.Option[string], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color())).Render("⚑ " + p.String())
		priorities = append(priorities, huh.NewOption(label, strings.ToLower(p.String())))
	}

	fields := []huh.Field{
		huh.NewNote().
			Title(cardTitle),
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Value(priority),
		huh.NewInput().
			Key("assignees").
			Title("Assignees").
			Description("Comma separated").
			Placeholder("Ana, Bo").
			Value(assignees),
		huh.NewInput().
			Key("due").
			Title("Due date").
			Description("YYYY-MM-DD, leave empty for none").
			Placeholder(models.DateLayout).
			Validate(validDueDate).
			Value(dueDate),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown welcome...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(descriptionKeyMap()).WithShowHelp(false)
}

func validDueDate(s string) error {
	_, err := models.ParseDueDate(s)
	return err
}
