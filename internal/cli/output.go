package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"habitkeep/internal/habit"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (unknown habit, validation, etc.)
	ExitCommandError = 2 // Command error (bad config, backend unreachable, etc.)
)

// Error codes reported in JSON output.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeValidation   = "E002" // Malformed creation input
	ErrCodeNotFound     = "E003" // No habit record at id
	ErrCodeInvalidHabit = "E004" // Log mutation on unknown id
	ErrCodeBadRecord    = "E005" // Unrevivable stored record
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errCodeFor maps a habit-layer error to its CLI error code.
func errCodeFor(err error) string {
	switch {
	case habit.IsValidation(err):
		return ErrCodeValidation
	case habit.IsNotFound(err):
		return ErrCodeNotFound
	case habit.IsInvalidHabit(err):
		return ErrCodeInvalidHabit
	case habit.IsInvalidLogEntry(err), habit.IsMalformedLog(err):
		return ErrCodeBadRecord
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics go here so JSON on Writer stays parseable
	Verbose   bool
}

// CLIResponse is the standard JSON response envelope.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// JSON emits the data payload when in JSON mode and reports whether it did,
// letting commands fall through to their text rendering otherwise.
func (f *OutputFormatter) JSON(data interface{}) (bool, error) {
	if f.Format != "json" {
		return false, nil
	}
	return true, json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "ok",
		Data:   data,
	})
}

// Textf writes formatted human-readable output.
func (f *OutputFormatter) Textf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Fail renders err in the configured format and returns the ExitError the
// command should propagate.
func (f *OutputFormatter) Fail(err error) error {
	code := errCodeFor(err)
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error()},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err.Error())
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
