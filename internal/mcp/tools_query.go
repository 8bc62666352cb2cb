package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/zetta/internal/notebox"
)

// SearchInput is the input for the search_notes tool.
type SearchInput struct {
	Pattern string `json:"pattern" jsonschema:"substring to look for, compared case-insensitively"`
}

func handleSearch(store *notebox.Store) mcp.ToolHandlerFor[SearchInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, ListOutput, error) {
		if input.Pattern == "" {
			return nil, ListOutput{}, errors.New("specify a non-empty pattern")
		}

		summaries, stats, err := store.Search(input.Pattern)
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("searching notes: %w", err)
		}
		return nil, ListOutput{
			Count:   len(summaries),
			Notes:   toNoteRefs(summaries),
			Skipped: skippedMessages(stats),
		}, nil
	}
}

// HistoryInput is the input for the note_history tool.
type HistoryInput struct {
	ID    string `json:"id"              jsonschema:"note identifier"`
	Limit int    `json:"limit,omitempty" jsonschema:"return at most this many commits (newest first)"`
}

// HistoryOutput is the output for the note_history tool.
type HistoryOutput struct {
	ID      string          `json:"id"      jsonschema:"note identifier"`
	Exists  bool            `json:"exists"  jsonschema:"whether the note is currently in the box"`
	Count   int             `json:"count"   jsonschema:"number of commits returned"`
	Commits []CommitSummary `json:"commits" jsonschema:"commits that touched the note, newest first"`
}

func handleHistory(store *notebox.Store, history History) mcp.ToolHandlerFor[HistoryInput, HistoryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
		if err := notebox.ValidateID(input.ID); err != nil {
			return nil, HistoryOutput{}, err
		}

		commits, err := history.Log(ctx, input.ID)
		if err != nil {
			return nil, HistoryOutput{}, fmt.Errorf("reading history: %w", err)
		}
		exists := store.Exists(input.ID)
		if len(commits) == 0 && !exists {
			return nil, HistoryOutput{}, notebox.NotFoundError(input.ID)
		}

		if input.Limit > 0 && len(commits) > input.Limit {
			commits = commits[:input.Limit]
		}

		return nil, HistoryOutput{
			ID:      input.ID,
			Exists:  exists,
			Count:   len(commits),
			Commits: toCommitSummaries(commits),
		}, nil
	}
}
