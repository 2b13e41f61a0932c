package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter prints command results as JSON, as bare ids (quiet) or
// as styled text
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out defaults to stdout
	Out io.Writer
}

// identified values print their id in quiet mode
type identified interface{ GetID() string }

// listed values print one id per line in quiet mode
type listed interface{ IDs() []string }

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

// Success prints a command's result
func (f *OutputFormatter) Success(data any) error {
	w := f.out()

	if f.Quiet {
		switch v := data.(type) {
		case identified:
			_, err := fmt.Fprintln(w, v.GetID())
			return err
		case listed:
			for _, id := range v.IDs() {
				if _, err := fmt.Fprintln(w, id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	}

	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(w, s.String())
		return err
	}
	_, err := fmt.Fprintf(w, "%+v\n", data)
	return err
}

// Error prints a failure
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion prints a failure and what the user might try instead.
// Human-readable failures go to stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(envelope{
			Error: &errorBody{Code: code, Message: message, Suggestion: suggestion},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Try: %s\n", suggestion)
	}
	return nil
}

// Fail reports err through the formatter and returns it with the matching exit code
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	code, exit := Classify(err)
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return WithExitCode(exit, err)
}
