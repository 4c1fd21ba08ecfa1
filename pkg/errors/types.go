// Package errors defines the error taxonomy and exit codes for depgroups.
// It provides typed errors for state violations, validation failures, and
// command termination with scripting-friendly exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates the assignment completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a critical error occurred.
	// This includes: unreadable input files and internal failures.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or state error.
	// The command could not proceed due to an invalid job config or an
	// illegal engine state transition.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitConfigError,
//	    Message: "failed to load job config",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 2=failure, 3=config or state error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
//
// Example:
//
//	err := errors.NewExitError(errors.ExitConfigError, configErr)
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitFailure, "failed to read %s", filename)
func NewExitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// If err is a StateError or ValidationError, returns ExitConfigError.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if _, ok := IsStateError(err); ok {
		return ExitConfigError
	}
	if _, ok := IsValidationError(err); ok {
		return ExitConfigError
	}

	return ExitFailure
}

// StateError represents an illegal engine state transition.
//
// The grouping engine permits exactly one assignment pass per instance;
// attempting a second pass surfaces this error and leaves all engine
// state untouched.
//
// Fields:
//   - Operation: The operation that was rejected (e.g., "assign")
//   - Reason: Why the operation is illegal in the current state
//
// Example:
//
//	return &StateError{
//	    Operation: "assign",
//	    Reason:    "dependencies have already been assigned to groups",
//	}
type StateError struct {
	// Operation is the name of the rejected operation.
	Operation string

	// Reason describes why the operation is illegal in the current state.
	Reason string
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted message including the operation and reason
func (e *StateError) Error() string {
	if e.Operation == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
}

// NewStateError creates a StateError for the given operation and reason.
//
// Parameters:
//   - operation: Name of the rejected operation
//   - reason: Why the operation is illegal
//
// Returns:
//   - *StateError: New state error
func NewStateError(operation, reason string) *StateError {
	return &StateError{Operation: operation, Reason: reason}
}

// IsStateError checks if err is a StateError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *StateError: The state error, or nil if err is not one
//   - bool: true if err is a StateError
func IsStateError(err error) (*StateError, bool) {
	var stateErr *StateError
	if errors.As(err, &stateErr) {
		return stateErr, true
	}
	return nil, false
}
