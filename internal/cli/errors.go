package cli

import (
	"errors"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/models"
)

// ErrInvalidScript indicates a replay script that cannot be parsed or run
var ErrInvalidScript = errors.New("invalid replay script")

// Classify maps an error to the machine readable code and exit code the CLI reports
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, board.ErrCardNotFound):
		return "CARD_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrTitleTooLong),
		errors.Is(err, board.ErrDuplicateColumn),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrInvalidDate):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, config.ErrInvalidSeed),
		errors.Is(err, ErrInvalidScript):
		return "DATA_ERROR", ExitDataErr
	default:
		return "ERROR", ExitError
	}
}
