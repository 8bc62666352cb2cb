package actions

import (
	"context"
	"fmt"
	"os"

	"github.com/gorewood/zetta/internal/export"
	"github.com/gorewood/zetta/internal/output"
)

// Export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ExportOptions select the export format and destination.
type ExportOptions struct {
	Format string // FormatJSON or FormatMarkdown
	OutDir string // Write one file per note here; empty writes to stdout
}

// Export writes every note, in identifier order, as JSON or Markdown.
// Notes that cannot be read are skipped with a warning.
func (h *Handler) Export(ctx context.Context, opts ExportOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatJSON
	}
	if format == "md" {
		format = FormatMarkdown
	}
	if format != FormatJSON && format != FormatMarkdown {
		return output.NewUserError(fmt.Sprintf("unknown export format %q: use json or markdown", opts.Format))
	}

	docs, err := h.documents(ctx)
	if err != nil {
		return err
	}

	if opts.OutDir == "" {
		if format == FormatJSON {
			return export.FormatJSON(h.printer, docs)
		}
		return export.WriteMarkdown(h.printer, docs)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create output directory "+opts.OutDir, err)
	}
	if format == FormatJSON {
		err = export.WriteJSONFiles(docs, opts.OutDir)
	} else {
		err = export.WriteMarkdownFiles(docs, opts.OutDir)
	}
	if err != nil {
		return err
	}

	return h.printer.Success(map[string]any{
		"message": fmt.Sprintf("exported %d notes to %s", len(docs), opts.OutDir),
		"count":   len(docs),
		"dir":     opts.OutDir,
		"format":  format,
	})
}

// documents reads every note together with its commit count and last
// commit date.
func (h *Handler) documents(ctx context.Context) ([]export.Document, error) {
	ids, err := h.store.ListIDs()
	if err != nil {
		return nil, err
	}

	docs := make([]export.Document, 0, len(ids))
	for _, id := range ids {
		note, err := h.store.Get(id)
		if err != nil {
			h.printer.Warn("skipped unreadable note: %s", errorMessage(err))
			continue
		}

		doc := export.Document{ID: note.ID, Title: note.Title, Content: note.Content()}
		commits, err := h.vcs.Log(ctx, id)
		if err != nil {
			h.log.Debug().Err(err).Str("id", id).Msg("history unavailable")
		} else if len(commits) > 0 {
			doc.Commits = len(commits)
			doc.Updated = commits[0].Date
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
