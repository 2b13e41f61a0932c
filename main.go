package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/swimlane/cmd"
	"github.com/thenoetrevino/swimlane/internal/cli"
)

func main() {
	err := cmd.Execute()
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		// Commands that set an exit code already reported the error
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
