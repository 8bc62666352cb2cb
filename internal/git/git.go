// Package git provides Git operations via exec for the zetta CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/zetta/internal/output"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrGitNotFound     = errors.New("git executable not found")
	ErrCommandFailed   = errors.New("git command failed")
	ErrNotARepository  = errors.New("not a git repository")
	ErrNothingToCommit = errors.New("nothing to commit")
)

// CommandError describes a git invocation that exited unsuccessfully.
// It matches ErrCommandFailed under errors.Is.
type CommandError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return "git " + strings.Join(e.Args, " ") + ": " + msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// Run executes a git command in dir with the given arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext executes a git command in dir with the given context and arguments.
// An empty dir runs in the current working directory.
// On a non-zero exit the returned error wraps a *CommandError carrying the
// exit code and both output streams.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause(
				"git not found: ensure git is installed and in PATH", errors.Join(ErrGitNotFound, err))
		}

		cmdErr := &CommandError{
			Args:     args,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: -1,
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, cmdErr)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// exitCode extracts the git exit code from an error returned by RunContext.
// Returns -1 if the error is not a git exit.
func exitCode(err error) int {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return -1
}

// combinedOutput returns stdout and stderr of a failed git command.
func combinedOutput(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Stdout + "\n" + cmdErr.Stderr
	}
	return ""
}
