package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/todo/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Usage or configuration failure
	ExitCommandError = 2 // Storage failure (database cannot be created, opened, written or read)
)

// Error codes reported in CLI error output.
const (
	ErrCodeStorage = "E001" // storage unavailable
	ErrCodeConfig  = "E002" // config file missing or invalid
	ErrCodeUsage   = "E003" // bad flags or arguments
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Kind    string // Error code for output (ErrCodeStorage, ...)
	Message string // Error message
	Err     error  // Underlying error (optional)
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

// WrapExitError wraps an existing error with an exit code and error kind.
func WrapExitError(code int, kind, message string, err error) *ExitError {
	return &ExitError{Code: code, Kind: kind, Message: message, Err: err}
}

// storageError wraps a store failure. Every store failure exits with
// ExitCommandError.
func storageError(message string, err error) *ExitError {
	return WrapExitError(ExitCommandError, ErrCodeStorage, message, err)
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, store.ErrStorageUnavailable) {
		return ExitCommandError
	}
	return ExitFailure
}

// GetErrorCode extracts the output error code from an error.
// Errors that are not ExitErrors come from flag and argument parsing.
func GetErrorCode(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Kind != "" {
		return exitErr.Kind
	}
	if errors.Is(err, store.ErrStorageUnavailable) {
		return ErrCodeStorage
	}
	return ErrCodeUsage
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitzero"`  // success payload; an empty list is kept
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E001", "E002", etc.
	Message string `json:"message"` // human-readable message
}

// Success writes data in the JSON response envelope. Text output is
// written by Todo and Todos.
func (f *OutputFormatter) Success(data any) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "ok",
		Data:   data,
	})
}

// Todo outputs a single record. Text format is "<id>: <title>".
func (f *OutputFormatter) Todo(todo store.Todo) error {
	if f.Format == "json" {
		return f.Success(todo)
	}
	return writeTodoLine(f.Writer, todo)
}

// Todos outputs records in the order given, one "<id>: <title>" line each
// in text format. An empty list prints nothing in text format and an empty
// array in JSON.
func (f *OutputFormatter) Todos(todos []store.Todo) error {
	if f.Format == "json" {
		if todos == nil {
			todos = []store.Todo{}
		}
		return f.Success(todos)
	}

	for _, todo := range todos {
		if err := writeTodoLine(f.Writer, todo); err != nil {
			return err
		}
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
			},
		})
	}

	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

func writeTodoLine(w io.Writer, todo store.Todo) error {
	_, err := fmt.Fprintf(w, "%d: %s\n", todo.ID, todo.Title)
	return err
}
