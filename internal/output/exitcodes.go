// Package output provides structured output and error handling for the zetta CLI.
package output

import "errors"

// Exit codes:
// 0 = Success (including recovered "not found" and "cancelled" outcomes)
// 1 = User error (bad args, invalid note identifier)
// 2 = System error (git failed, editor failed, I/O error)
// 3 = Conflict (note already exists)
// 4 = Configuration error (box unset, not a directory, not a git work tree)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
	ExitConfigError = 4
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, malformed identifiers.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping a sentinel or underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: git operation failures, I/O errors.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewConflictError creates an error for conflict situations (exit code 3).
func NewConflictError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: message,
	}
}

// NewConflictErrorWithCause creates a conflict error wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates an error for startup configuration problems (exit code 4).
func NewConfigError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConfigError,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a configuration error wrapping an underlying cause.
func NewConfigErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConfigError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
