package actions

import (
	"context"
	"fmt"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
)

// List prints "<id>: <title>" for every note in identifier order.
func (h *Handler) List() error {
	summaries, stats, err := h.store.Summaries()
	if err != nil {
		return err
	}
	h.reportSkipped(stats)
	return h.printSummaries(summaries)
}

// Search prints "<id>: <title>" for every note with a line containing
// pattern, ignoring case. Each note is printed at most once.
func (h *Handler) Search(pattern string) error {
	if pattern == "" {
		return output.NewUserError("search pattern must not be empty")
	}

	summaries, stats, err := h.store.Search(pattern)
	if err != nil {
		return err
	}
	h.reportSkipped(stats)
	return h.printSummaries(summaries)
}

func (h *Handler) printSummaries(summaries []notebox.Summary) error {
	if h.printer.IsJSON() {
		return h.printer.WriteJSON(summaries)
	}
	for _, s := range summaries {
		h.printer.NoteLine(s.ID, s.Title)
	}
	return nil
}

func (h *Handler) reportSkipped(stats *notebox.ListStats) {
	for _, err := range stats.Errors {
		h.log.Debug().Err(err).Msg("skipped note")
		h.printer.Warn("skipped unreadable note: %s", errorMessage(err))
	}
}

// HistoryEntry is one commit in a note's history.
type HistoryEntry struct {
	git.Commit
	Stat *git.Diffstat `json:"stat,omitempty"`
}

// History prints the commits that touched a note, newest first.
// Deleted notes still have a history; only an identifier git has never
// seen and that does not exist on disk is reported as not found.
func (h *Handler) History(ctx context.Context, id string, withStat bool) error {
	if err := notebox.ValidateID(id); err != nil {
		return err
	}

	commits, err := h.vcs.Log(ctx, id)
	if err != nil {
		return err
	}
	if len(commits) == 0 && !h.store.Exists(id) {
		return notebox.NotFoundError(id)
	}

	entries := make([]HistoryEntry, 0, len(commits))
	for _, c := range commits {
		entry := HistoryEntry{Commit: c}
		if withStat {
			stat, statErr := h.vcs.Stat(ctx, c.SHA, id)
			if statErr != nil {
				return statErr
			}
			entry.Stat = &stat
		}
		entries = append(entries, entry)
	}

	if h.printer.IsJSON() {
		return h.printer.WriteJSON(entries)
	}
	if len(entries) == 0 {
		h.say("%s has no commits yet", id)
		return nil
	}

	headers := []string{"COMMIT", "DATE", "SUBJECT"}
	if withStat {
		headers = []string{"COMMIT", "DATE", "CHANGES", "SUBJECT"}
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		date := e.Date.Format("2006-01-02 15:04")
		if withStat {
			rows = append(rows, []string{e.Short, date, formatStat(*e.Stat), e.Subject})
			continue
		}
		rows = append(rows, []string{e.Short, date, e.Subject})
	}
	h.printer.Table(headers, rows)
	return nil
}

func formatStat(stat git.Diffstat) string {
	return fmt.Sprintf("+%d -%d", stat.Insertions, stat.Deletions)
}
