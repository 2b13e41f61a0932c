package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swimlane/internal/cli/card"
	"github.com/thenoetrevino/swimlane/internal/cli/column"
	"github.com/thenoetrevino/swimlane/internal/cli/replay"
	"github.com/thenoetrevino/swimlane/internal/launcher"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/swimlane/cmd.Version=..."
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "swimlane",
	Short: "Swimlane - A terminal kanban board you rearrange with the mouse",
	Long: `Swimlane is a terminal kanban board. Drag cards between columns with the
mouse; drop them on Discard to delete them. Boards live only for the session.

Run without a subcommand to open the board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "swimlane", Version)
	},
}

func init() {
	rootCmd.AddCommand(card.BoardCmd())
	rootCmd.AddCommand(card.ShowCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(replay.ReplayCmd())
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
