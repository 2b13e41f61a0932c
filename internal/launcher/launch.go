package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/logging"
	"github.com/thenoetrevino/swimlane/internal/tui/core"
)

// shutdownGrace bounds how long Launch waits for the program after a signal
const shutdownGrace = 2 * time.Second

// Launch starts the TUI application on a fresh board
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the board
	if err := logging.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	initial, err := cfg.InitialBoard(board.UUIDGenerator{}, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build starting board: %w", err)
	}
	slog.Info("board ready", "columns", len(initial.Columns()), "cards", initial.Len(), "seed_file", cfg.Board.SeedFile)

	application := app.New(initial,
		app.WithActivationOffset(cfg.Board.ActivationOffset),
		app.WithLogger(slog.Default()),
	)
	tuiApp := core.New(ctx, application, cfg)
	defer tuiApp.Close()

	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not stop in time")
		}
	}

	return nil
}
