package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Inspect board columns",
		Long:  "List the starting board's columns and the heading colors new columns can use.",
	}

	cmd.AddCommand(columnListCmd())
	cmd.AddCommand(columnPaletteCmd())

	return cmd
}

// ColumnInfo is the printable form of a column without its cards
type ColumnInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// ColumnList is every column in display order
type ColumnList []ColumnInfo

func (l ColumnList) String() string {
	if len(l) == 0 {
		return "No columns"
	}

	var b strings.Builder
	for i, c := range l {
		heading := styles.RenderColumnHeading(models.Column{
			Title:        c.Title,
			HeadingColor: models.ColorToken(c.Color),
		}, c.Count)
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, heading, styles.SubtitleStyle.Render("("+c.Key+")"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// IDs lists the column keys
func (l ColumnList) IDs() []string {
	keys := make([]string, len(l))
	for i, c := range l {
		keys[i] = c.Key
	}
	return keys
}

// columnListCmd returns the column list subcommand
func columnListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List all columns of the starting board (in order) with their card counts.

Examples:
  # Human-readable list
  swimlane column list

  # JSON output for agents
  swimlane column list --json

  # Quiet mode (one key per line)
  swimlane column list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runColumnList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (keys only)")

	return cmd
}

func runColumnList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitDataErr, err)
	}
	styles.Init(cliInstance.Config.ColorScheme)

	b := cliInstance.App.Board()
	columns := make(ColumnList, 0, len(b.Columns()))
	for _, col := range b.Columns() {
		columns = append(columns, ColumnInfo{
			Key:   string(col.Key),
			Title: col.Title,
			Color: string(col.HeadingColor),
			Count: b.CountInColumn(col.Key),
		})
	}

	return formatter.Success(columns)
}

// Swatch is the printable form of one palette entry
type Swatch struct {
	Token   string `json:"token"`
	Heading string `json:"heading"`
	Fill    string `json:"fill"`
}

// SwatchList is the palette in picker order
type SwatchList []Swatch

func (l SwatchList) String() string {
	var b strings.Builder
	for _, s := range l {
		fmt.Fprintf(&b, "  %s %s\n", styles.ColoredText("●", s.Fill), styles.BoldColoredText(s.Token, s.Heading))
	}
	return strings.TrimRight(b.String(), "\n")
}

// IDs lists the palette tokens
func (l SwatchList) IDs() []string {
	tokens := make([]string, len(l))
	for i, s := range l {
		tokens[i] = s.Token
	}
	return tokens
}

// columnPaletteCmd returns the palette subcommand
func columnPaletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List column heading colors",
		Long: `List the color tokens a new column can use. Unknown tokens fall back to neutral.

Examples:
  swimlane column palette
  swimlane column palette --json
`,
		Args: cobra.NoArgs,
		RunE: runColumnPalette,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (tokens only)")

	return cmd
}

func runColumnPalette(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	palette := make(SwatchList, 0, len(models.Palette))
	for _, token := range models.Palette {
		sw := token.Swatch()
		palette = append(palette, Swatch{Token: string(token), Heading: sw.Heading, Fill: sw.Fill})
	}

	return formatter.Success(palette)
}
