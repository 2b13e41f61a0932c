package card

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
)

// BoardCmd returns the board listing command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the starting board",
		Long: `Print every column and its cards in display order.

Examples:
  # Human-readable board
  swimlane board

  # JSON output for agents
  swimlane board --json

  # Quiet mode (one card ID per line)
  swimlane board --quiet
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
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

	view := cli.NewBoardView(cliInstance.App.Board())

	return formatter.Success(view)
}
