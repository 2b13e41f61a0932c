package card

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ShowCmd returns the card show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display all details of a card, rendering its description as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	// Flags
	cmd.Flags().String("id", "", "Card ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	var cardID string
	if len(args) > 0 {
		cardID = args[0]
	} else {
		cardID, _ = cmd.Flags().GetString("id")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if strings.TrimSpace(cardID) == "" {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_CARD_ID",
			"card ID is required",
			"Usage: swimlane show <id> or swimlane show --id=<id>"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitUsage, board.ErrInvalidCardID)
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitDataErr, err)
	}

	card, ok := cliInstance.App.Card(types.CardID(cardID))
	if !ok {
		return formatter.Fail(fmt.Errorf("%w: %s", board.ErrCardNotFound, cardID),
			"List card IDs with: swimlane board --quiet")
	}

	// Output in appropriate format
	if quietMode {
		fmt.Println(card.ID)
		return nil
	}

	if jsonOutput {
		return outputJSON(card)
	}

	styles.Init(cliInstance.Config.ColorScheme)
	col, _ := cliInstance.App.Board().Column(card.Column)
	fmt.Println(styles.RenderCard(renderHuman(card, col)))
	return nil
}

func outputJSON(card models.Card) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"card":    cli.NewCardView(card),
	})
}

// renderHuman lays out a card with its markdown description
func renderHuman(card models.Card, col models.Column) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(card.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("#" + string(card.ID)))
	content.WriteString("\n\n")

	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Column:"),
		styles.BoldColoredText(col.Title, col.HeadingColor.Swatch().Heading),
		styles.LabelStyle.Render("Priority:"),
		styles.RenderPriority(card.Priority),
	)

	assignees := "-"
	if len(card.Assignees) > 0 {
		assignees = strings.Join(card.Assignees, ", ")
	}
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Assignees:"), styles.ValueStyle.Render(assignees))
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Due:"), styles.ValueStyle.Render(card.DueLabel()))
	if card.Status != "" {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Status:"), styles.ValueStyle.Render(card.Status))
	}
	if card.Lead != "" {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Lead:"), styles.ValueStyle.Render(card.Lead))
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(card.Description, styles.CardWidth-6))

	return content.String()
}
