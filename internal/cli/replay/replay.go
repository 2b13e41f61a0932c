package replay

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/events"
)

// Report is the outcome of a replay
type Report struct {
	Steps  []Result       `json:"steps"`
	Events []events.Event `json:"events"`
	Board  cli.BoardView  `json:"board"`
}

// String renders the report for humans
func (r Report) String() string {
	out := ""
	for _, res := range r.Steps {
		line := fmt.Sprintf("%3d %-10s %s", res.Step, res.Action, styles.RenderOutcome(res.Outcome))
		if res.Detail != "" {
			line += "  " + styles.SubtitleStyle.Render(res.Detail)
		}
		out += line + "\n"
	}
	out += fmt.Sprintf("\n%d change(s)\n\n", len(r.Events))
	return out + r.Board.String()
}

// IDs lists the final card order
func (r Report) IDs() []string {
	return r.Board.IDs()
}

// ReplayCmd returns the replay command
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a drag script against the starting board",
		Long: `Feed a YAML script of drag events and board commands through the board
controller, then print what each step did and the resulting board.

Example script:
  card_height: 100
  steps:
    - start: "3"
    - over: {column: backlog, y: 120}
    - drop: backlog
    - add_card: {column: todo, title: Write release notes}
    - edit: {card: "1", priority: high, assignees: "Ana, Bo"}
`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card IDs of the final board)")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	script, err := LoadScript(args[0])
	if err != nil {
		return formatter.Fail(err, "Check the script against: swimlane replay --help")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitDataErr, err)
	}
	styles.Init(cliInstance.Config.ColorScheme)

	report := Execute(cliInstance, script)

	return formatter.Success(report)
}

// Execute runs script against the CLI's board and collects every change event
func Execute(c *cli.CLI, script Script) Report {
	var changes []events.Event
	unsubscribe := c.App.Subscribe(func(e events.Event) {
		changes = append(changes, e)
	})
	defer unsubscribe()

	steps := NewRunner(c.App, script).Run()

	if changes == nil {
		changes = []events.Event{}
	}
	return Report{
		Steps:  steps,
		Events: changes,
		Board:  cli.NewBoardView(c.App.Board()),
	}
}
