// Package editor launches the user's text editor on a note file and waits
// for it to exit.
package editor

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/output"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNotFound = errors.New("editor not found")
	ErrFailed   = errors.New("editor exited unsuccessfully")
)

// Launcher runs a configured editor command attached to the given terminal streams.
// The command may carry arguments, e.g. "code --wait"; the note path is
// appended as the final argument.
type Launcher struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     zerolog.Logger
}

// New creates a Launcher for command.
func New(command string, stdin io.Reader, stdout, stderr io.Writer, logger zerolog.Logger) *Launcher {
	return &Launcher{
		command: command,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		log:     logger,
	}
}

// Edit opens path in the editor and blocks until the editor process exits.
// A missing executable yields ErrNotFound; a non-zero exit yields ErrFailed.
func (l *Launcher) Edit(ctx context.Context, path string) error {
	fields := strings.Fields(l.command)
	if len(fields) == 0 {
		return output.NewConfigErrorWithCause("no editor configured", ErrNotFound)
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return output.NewSystemErrorWithCause(
			"editor "+fields[0]+" not found: set ZETTA_EDITOR or EDITOR", errors.Join(ErrNotFound, err))
	}

	args := append(fields[1:len(fields):len(fields)], path)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	l.log.Debug().Str("editor", bin).Strs("args", args).Msg("launching editor")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output.NewSystemErrorWithCause(
				"editor "+fields[0]+" exited with status "+exitStatus(exitErr), errors.Join(ErrFailed, err))
		}
		return output.NewSystemErrorWithCause("failed to run editor "+fields[0], errors.Join(ErrFailed, err))
	}
	return nil
}

func exitStatus(err *exec.ExitError) string {
	code := err.ExitCode()
	if code < 0 {
		return "signal"
	}
	return strconv.Itoa(code)
}
