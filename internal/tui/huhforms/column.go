package huhforms

import (
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// CreateColumnForm creates a huh form for adding a column: a title and a
// heading color picked from the fixed palette. The form saves on completion.
func CreateColumnForm(title *string, color *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(models.Palette))
	for _, token := range models.Palette {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(token.Swatch().Fill)).
			Render("●")
		options = append(options, huh.NewOption(dot+" "+string(token), string(token)))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("New Column").
			Placeholder("Enter column title...").
			CharLimit(models.MaxTitleLength).
			Validate(notBlank("column title")).
			Value(title),
		huh.NewSelect[string]().
			Key("color").
			Title("Heading Color").
			Options(options...).
			Value(color),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// notBlank rejects empty or whitespace-only input
func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}
