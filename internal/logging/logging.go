package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.swimlane/logs/swimlane.log
// at the given level. Uses text format for human readability.
func Init(level string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitDir(filepath.Join(homeDir, ".swimlane", "logs"), level)
}

// InitDir is Init with an explicit log directory
func InitDir(logDir, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "swimlane.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: lvl,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// ParseLevel maps a config level name (debug, info, warn, error) to a slog level.
// An empty name means debug.
func ParseLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelDebug, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
