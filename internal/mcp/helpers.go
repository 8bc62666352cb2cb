package mcp

import (
	"time"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
)

// toCommitSummaries converts git commits to CommitSummary slice.
func toCommitSummaries(commits []git.Commit) []CommitSummary {
	result := make([]CommitSummary, 0, len(commits))
	for _, commit := range commits {
		result = append(result, CommitSummary{
			SHA:     commit.SHA,
			Short:   commit.Short,
			Subject: commit.Subject,
			Author:  commit.Author,
			Date:    commit.Date.UTC().Format(time.RFC3339),
		})
	}
	return result
}

// toNoteRefs converts store summaries to NoteRef slice.
func toNoteRefs(summaries []notebox.Summary) []NoteRef {
	result := make([]NoteRef, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, NoteRef{ID: s.ID, Title: s.Title})
	}
	return result
}

// skippedMessages renders the errors of notes a scan could not read.
func skippedMessages(stats *notebox.ListStats) []string {
	if stats == nil || len(stats.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(stats.Errors))
	for _, err := range stats.Errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}
