package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/theme"
)

// RenderCardDetail renders everything known about a card for the detail
// view: title, column, priority, due date, assignees and the markdown
// description
func RenderCardDetail(card models.Card, column models.Column, width int) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Width(12)
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(column.HeadingColor.Swatch().Heading))

	assignees := "-"
	if len(card.Assignees) > 0 {
		assignees = strings.Join(card.Assignees, ", ")
	}

	rows := []string{
		TitleStyle.Render(card.Title),
		"",
		label.Render("Column") + heading.Render(column.Title),
		label.Render("Priority") + priorityFlag(card.Priority),
		label.Render("Due") + card.DueLabel(),
		label.Render("Assignees") + assignees,
	}
	if card.Lead != "" {
		rows = append(rows, label.Render("Lead")+card.Lead)
	}
	if card.Status != "" {
		rows = append(rows, label.Render("Status")+card.Status)
	}

	rows = append(rows, "", RenderDescription(card.Description, width))
	return strings.Join(rows, "\n")
}
