// Package prompt reads line-oriented answers from the terminal for the
// confirmation questions asked by create, edit and delete.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a line could be read.
var ErrNoInput = errors.New("no input")

// Questions asked by the confirmation flows.
const (
	CommitQuestion = "commit? (y/n): "
	RetryQuestion  = `enter either "y" or "n": `
	DeleteQuestion = "delete? (y/n): "
)

// LineReader asks a question and returns the answer line without its terminator.
type LineReader interface {
	ReadLine(question string) (string, error)
}

// Prompter is a LineReader over a reader and writer pair, usually stdin and stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter. Questions are written to out without a trailing newline.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine writes question and reads one line.
// A final line without a newline is still returned; ErrNoInput only
// signals that nothing at all was left to read.
func (p *Prompter) ReadLine(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrNoInput
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ConfirmCommit asks whether to commit and re-asks until the answer is
// exactly "y" or "n". Running out of input counts as "n".
func ConfirmCommit(lr LineReader) (bool, error) {
	question := CommitQuestion
	for {
		answer, err := lr.ReadLine(question)
		if errors.Is(err, ErrNoInput) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		question = RetryQuestion
	}
}

// ConfirmOnce asks question a single time. Only an exact "y" confirms;
// every other answer, including no input, declines without asking again.
func ConfirmOnce(lr LineReader, question string) (bool, error) {
	answer, err := lr.ReadLine(question)
	if errors.Is(err, ErrNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}
