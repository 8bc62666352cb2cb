// Package output provides structured output and error handling for the zetta CLI.
package output

import (
	"errors"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
		{"ExitConflict", ExitConflict, 3},
		{"ExitConfigError", ExitConfigError, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantMessage  string
		wantErrorStr string
	}{
		{
			name:         "user error",
			err:          NewUserError("invalid note id: ../etc"),
			wantCode:     ExitUserError,
			wantMessage:  "invalid note id: ../etc",
			wantErrorStr: "invalid note id: ../etc",
		},
		{
			name:         "system error",
			err:          NewSystemError("git operation failed"),
			wantCode:     ExitSystemError,
			wantMessage:  "git operation failed",
			wantErrorStr: "git operation failed",
		},
		{
			name:         "conflict error",
			err:          NewConflictError("note already exists: 20260115093000"),
			wantCode:     ExitConflict,
			wantMessage:  "note already exists: 20260115093000",
			wantErrorStr: "note already exists: 20260115093000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("exit status 128")
	err := NewSystemErrorWithCause("git commit failed", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}

	// Test Unwrap
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	// Test that Error() includes the message
	if err.Error() != "git commit failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "git commit failed")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "ExitError user",
			err:      NewUserError("bad input"),
			expected: ExitUserError,
		},
		{
			name:     "ExitError system",
			err:      NewSystemError("git failed"),
			expected: ExitSystemError,
		},
		{
			name:     "ExitError conflict",
			err:      NewConflictError("duplicate"),
			expected: ExitConflict,
		},
		{
			name:     "ExitError config",
			err:      NewConfigError("ZETTA_BOX is not set"),
			expected: ExitConfigError,
		},
		{
			name:     "regular error defaults to user error",
			err:      errors.New("some error"),
			expected: ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestWithCauseConstructors(t *testing.T) {
	sentinel := errors.New("sentinel")

	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
	}{
		{"user", NewUserErrorWithCause("bad id", sentinel), ExitUserError},
		{"conflict", NewConflictErrorWithCause("exists", sentinel), ExitConflict},
		{"config", NewConfigErrorWithCause("not a repo", sentinel), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if !errors.Is(tt.err, sentinel) {
				t.Error("errors.Is should find the wrapped sentinel")
			}
			if GetExitCode(tt.err) != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", GetExitCode(tt.err), tt.wantCode)
			}
		})
	}
}
