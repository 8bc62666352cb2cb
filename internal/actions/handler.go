// Package actions implements the note operations behind each zetta command:
// create, edit, delete, show, list, search, history and export.
//
// A Handler is wired once per invocation with the note store, the
// version-control adapter, the editor and the prompt. Every collaborator
// that touches the terminal or another process is an interface so tests
// can substitute scripted fakes.
package actions

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
	"github.com/gorewood/zetta/internal/prompt"
	"github.com/gorewood/zetta/internal/template"
)

// VersionControl records note changes in the box repository.
type VersionControl interface {
	Stage(ctx context.Context, path string) error
	StageRemoval(ctx context.Context, path string) error
	Commit(ctx context.Context, message string, paths ...string) error
	Log(ctx context.Context, path string) ([]git.Commit, error)
	Stat(ctx context.Context, sha, path string) (git.Diffstat, error)
}

// Editor opens a file in an external editor and blocks until it exits.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// Deps are the collaborators a Handler runs against.
type Deps struct {
	Store     *notebox.Store
	VCS       VersionControl
	Editor    Editor
	Prompt    prompt.LineReader
	Printer   *output.Printer
	Templates *template.Loader
	NewID     notebox.IDGenerator
	Now       func() time.Time
	Logger    zerolog.Logger
}

// Handler runs note operations.
type Handler struct {
	store     *notebox.Store
	vcs       VersionControl
	editor    Editor
	prompt    prompt.LineReader
	printer   *output.Printer
	templates *template.Loader
	newID     notebox.IDGenerator
	now       func() time.Time
	log       zerolog.Logger
}

// New creates a Handler. Templates defaults to the built-ins only and Now
// to time.Now.
func New(deps Deps) *Handler {
	templates := deps.Templates
	if templates == nil {
		templates = template.NewLoader("")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store:     deps.Store,
		vcs:       deps.VCS,
		editor:    deps.Editor,
		prompt:    deps.Prompt,
		printer:   deps.Printer,
		templates: templates,
		newID:     deps.NewID,
		now:       now,
		log:       deps.Logger,
	}
}

// Printer returns the printer the handler writes to.
func (h *Handler) Printer() *output.Printer {
	return h.printer
}

// commitOutcome is what happened after the commit question.
type commitOutcome int

const (
	commitDeclined commitOutcome = iota
	commitRecorded
	commitEmpty
)

// confirmAndCommit asks whether to commit and, on "y", stages the change and
// commits it scoped to path. An empty change set is not an error; the
// caller decides how to word the warning.
func (h *Handler) confirmAndCommit(ctx context.Context, message, path string, removal bool) (commitOutcome, error) {
	ok, err := prompt.ConfirmCommit(h.prompt)
	if err != nil {
		return commitDeclined, output.NewSystemErrorWithCause("failed to read answer", err)
	}
	if !ok {
		h.log.Debug().Str("message", message).Msg("commit declined")
		return commitDeclined, nil
	}

	if removal {
		err = h.vcs.StageRemoval(ctx, path)
	} else {
		err = h.vcs.Stage(ctx, path)
	}
	if err != nil {
		return commitDeclined, err
	}

	if err := h.vcs.Commit(ctx, message, path); err != nil {
		if errors.Is(err, git.ErrNothingToCommit) {
			return commitEmpty, nil
		}
		return commitDeclined, err
	}
	h.log.Debug().Str("message", message).Msg("committed")
	return commitRecorded, nil
}

// reportCommit prints the result of a create or edit commit.
func (h *Handler) reportCommit(id, message string, outcome commitOutcome) error {
	switch outcome {
	case commitEmpty:
		h.printer.Warn("nothing to commit for %s: the note is unchanged", id)
	case commitRecorded:
		if !h.printer.IsJSON() {
			h.printer.Println("committed " + message)
		}
	}
	if h.printer.IsJSON() {
		return h.printer.Success(map[string]any{
			"id":        id,
			"message":   message,
			"committed": outcome == commitRecorded,
		})
	}
	return nil
}

// say prints a human-facing line. JSON mode reports through structured
// results instead, so nothing is printed there.
func (h *Handler) say(format string, args ...any) {
	if h.printer.IsJSON() {
		return
	}
	h.printer.Print(format+"\n", args...)
}
