package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable files, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: card not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: malformed seed files or replay scripts.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles, invalid priority or due date values,
	// duplicate column keys.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command. Commands
// return it instead of exiting so they stay testable; main exits with Code.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the attached
// code for an ExitCodeError, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
