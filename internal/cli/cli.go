package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Board controller
	Config *config.Config
}

// contextKey keys values the CLI stores on a command context
type contextKey string

// AppKey carries a prepared *app.App on a command context. Commands use it
// instead of building a board from config, which is how tests inject a board.
const AppKey contextKey = "app"

// WithApp returns a context carrying a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// NewCLI loads the config and builds the starting board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	initial, err := cfg.InitialBoard(board.UUIDGenerator{}, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	application := app.New(initial,
		app.WithActivationOffset(cfg.Board.ActivationOffset),
		app.WithLogger(slog.Default()),
	)

	return &CLI{App: application, Config: cfg}, nil
}

// GetCLIFromContext returns the CLI for a command, preferring an app stored
// under AppKey
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
			return &CLI{App: a, Config: config.Default()}, nil
		}
	}
	return NewCLI(ctx)
}
