package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
	"github.com/gorewood/zetta/internal/prompt"
	"github.com/gorewood/zetta/internal/template"
)

// CreateOptions configure a new note.
type CreateOptions struct {
	Title    string // First line; empty means the template title or "# "
	Template string // Template name; empty means none
}

// Create makes a new note, opens it in the editor and offers to commit it.
// It returns the new identifier, also when the editor fails: the note is
// kept on disk so it can be finished with Edit.
func (h *Handler) Create(ctx context.Context, opts CreateOptions) (string, error) {
	var tmpl *template.Template
	if opts.Template != "" {
		loaded, err := h.templates.Load(opts.Template)
		if err != nil {
			return "", err
		}
		tmpl = loaded
	}

	id := h.newID()
	content := template.Render(template.Initial(opts.Title, tmpl), template.Vars{ID: id, Now: h.now()})
	path, err := h.store.Create(id, content)
	if err != nil {
		return "", err
	}
	h.log.Debug().Str("id", id).Str("path", path).Msg("note created")

	if err := h.editor.Edit(ctx, path); err != nil {
		return id, output.NewSystemErrorWithCause(
			fmt.Sprintf("%s; note %s was kept, run 'zetta edit %s' to finish it", errorMessage(err), id, id), err)
	}

	return id, h.commitEdit(ctx, id)
}

// Edit opens an existing note in the editor and offers to commit the result.
func (h *Handler) Edit(ctx context.Context, id string) error {
	note, err := h.store.Get(id)
	if err != nil {
		return err
	}

	if err := h.editor.Edit(ctx, note.ContentPath); err != nil {
		return err
	}

	return h.commitEdit(ctx, id)
}

// commitEdit derives the commit message from the note's current first line,
// echoes it and runs the commit confirmation.
func (h *Handler) commitEdit(ctx context.Context, id string) error {
	line, err := h.store.ReadTitleLine(id)
	if err != nil {
		return err
	}
	message := notebox.CommitMessage(id, line)
	if !h.printer.IsJSON() {
		h.printer.NoteLine(id, line)
	}

	outcome, err := h.confirmAndCommit(ctx, message, h.store.Paths().RelContentPath(id), false)
	if err != nil {
		return err
	}
	return h.reportCommit(id, message, outcome)
}

// Delete removes a note after a single confirmation and offers to commit
// the removal. Only an exact "y" deletes.
func (h *Handler) Delete(ctx context.Context, id string) error {
	title, err := h.store.ReadTitle(id)
	if err != nil {
		return err
	}

	ok, err := prompt.ConfirmOnce(h.prompt, id+": "+title+"\n"+prompt.DeleteQuestion)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read answer", err)
	}
	if !ok {
		h.say("deletion canceled!")
		if h.printer.IsJSON() {
			return h.printer.Success(map[string]any{"id": id, "deleted": false, "message": "deletion canceled!"})
		}
		return nil
	}

	if err := h.store.Delete(id); err != nil {
		return err
	}
	h.say("deleted %s (%s)", id, title)

	message := notebox.DeletionMessage(id)
	outcome, err := h.confirmAndCommit(ctx, message, id, true)
	if err != nil {
		return err
	}
	switch outcome {
	case commitEmpty:
		h.printer.Warn("could not commit deletion: was it never committed on creation?")
	case commitRecorded:
		h.say("committed %s", message)
	}

	if h.printer.IsJSON() {
		return h.printer.Success(map[string]any{
			"id":        id,
			"deleted":   true,
			"message":   message,
			"committed": outcome == commitRecorded,
		})
	}
	return nil
}

// Show prints every line of a note with trailing whitespace removed.
func (h *Handler) Show(id string) error {
	note, err := h.store.Get(id)
	if err != nil {
		return err
	}

	if h.printer.IsJSON() {
		return h.printer.WriteJSON(note)
	}
	for _, line := range note.Lines {
		h.printer.Println(strings.TrimRight(line, " \t"))
	}
	return nil
}

// errorMessage returns the user-facing message of err.
func errorMessage(err error) string {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Message
	}
	return err.Error()
}
