package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/zetta/internal/notebox"
)

// --- Shared types ---

// NoteRef is a note reference as listed by list and search.
type NoteRef struct {
	ID    string `json:"id"    jsonschema:"note identifier"`
	Title string `json:"title" jsonschema:"note title (first line without heading marker)"`
}

// CommitSummary is a simplified commit for output.
type CommitSummary struct {
	SHA     string `json:"sha"     jsonschema:"full commit SHA"`
	Short   string `json:"short"   jsonschema:"short SHA (7 chars)"`
	Subject string `json:"subject" jsonschema:"commit subject line"`
	Author  string `json:"author"  jsonschema:"commit author name"`
	Date    string `json:"date"    jsonschema:"commit timestamp (RFC3339)"`
}

// --- List tool ---

// ListInput is the input for the list_notes tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list_notes and search_notes tools.
type ListOutput struct {
	Count   int       `json:"count"             jsonschema:"number of notes returned"`
	Notes   []NoteRef `json:"notes"             jsonschema:"notes in identifier order"`
	Skipped []string  `json:"skipped,omitempty" jsonschema:"notes that could not be read"`
}

func handleList(store *notebox.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		summaries, stats, err := store.Summaries()
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("listing notes: %w", err)
		}
		return nil, ListOutput{
			Count:   len(summaries),
			Notes:   toNoteRefs(summaries),
			Skipped: skippedMessages(stats),
		}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show_note tool.
type ShowInput struct {
	ID string `json:"id" jsonschema:"note identifier"`
}

// ShowOutput is the output for the show_note tool.
type ShowOutput struct {
	ID      string   `json:"id"      jsonschema:"note identifier"`
	Title   string   `json:"title"   jsonschema:"note title"`
	Lines   []string `json:"lines"   jsonschema:"content lines in file order"`
	Content string   `json:"content" jsonschema:"full content"`
}

func handleShow(store *notebox.Store) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		if input.ID == "" {
			return nil, ShowOutput{}, errors.New("specify id")
		}

		note, err := store.Get(input.ID)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("getting note: %w", err)
		}

		return nil, ShowOutput{
			ID:      note.ID,
			Title:   note.Title,
			Lines:   note.Lines,
			Content: note.Content(),
		}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the box_status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the box_status tool.
type StatusOutput struct {
	Root      string   `json:"root"              jsonschema:"absolute path of the note box"`
	NoteCount int      `json:"note_count"        jsonschema:"number of notes in the box"`
	Readable  int      `json:"readable"          jsonschema:"notes whose content could be read"`
	Skipped   []string `json:"skipped,omitempty" jsonschema:"notes that could not be read"`
}

func handleStatus(store *notebox.Store) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		_, stats, err := store.Summaries()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("listing notes: %w", err)
		}
		return nil, StatusOutput{
			Root:      store.Paths().Root(),
			NoteCount: stats.Total,
			Readable:  stats.Listed,
			Skipped:   skippedMessages(stats),
		}, nil
	}
}
