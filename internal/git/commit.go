package git

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gorewood/zetta/internal/output"
)

// Commit represents a git commit with its metadata.
type Commit struct {
	SHA         string    `json:"sha"`          // Full 40-character SHA
	Short       string    `json:"short"`        // Abbreviated SHA (typically 7 chars)
	Subject     string    `json:"subject"`      // First line of commit message
	Body        string    `json:"body"`         // Rest of commit message (may be empty)
	Author      string    `json:"author"`       // Author name
	AuthorEmail string    `json:"author_email"` // Author email
	Date        time.Time `json:"date"`         // Commit date
}

// Diffstat represents the change statistics of one commit under a path.
type Diffstat struct {
	Files      int `json:"files"`      // Number of files changed
	Insertions int `json:"insertions"` // Number of lines inserted
	Deletions  int `json:"deletions"`  // Number of lines deleted
}

// commitSeparator is used to delimit commits in log output.
const commitSeparator = "---COMMIT-BOUNDARY---"

// fieldSeparator is used to delimit fields within a commit.
const fieldSeparator = "---FIELD---"

// logFormat yields SHA, Short, Subject, Body, Author, AuthorEmail, Date (Unix timestamp).
var logFormat = strings.Join([]string{
	"%H",
	"%h",
	"%s",
	"%b",
	"%an",
	"%ae",
	"%at",
}, fieldSeparator) + commitSeparator

// Log returns the commits touching path, newest first.
// A repository without commits has no history and yields an empty slice.
func (r *Repo) Log(ctx context.Context, path string) ([]Commit, error) {
	if !r.HasCommits(ctx) {
		return []Commit{}, nil
	}

	out, err := r.run(ctx, "log", "--pretty=format:"+logFormat, "--", path)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to get git log for "+path, err)
	}
	return parseCommits(out)
}

// parseCommits parses the custom formatted git log output into Commit structs.
func parseCommits(out string) ([]Commit, error) {
	commits := []Commit{}
	if out == "" {
		return commits, nil
	}

	for _, commitStr := range strings.Split(out, commitSeparator) {
		commitStr = strings.TrimSpace(commitStr)
		if commitStr == "" {
			continue
		}

		commit, ok := parseCommitFields(commitStr)
		if ok {
			commits = append(commits, commit)
		}
	}

	return commits, nil
}

// parseCommitFields parses a single commit string into a Commit struct.
// Returns the commit and true if successful, zero value and false otherwise.
func parseCommitFields(commitStr string) (Commit, bool) {
	fields := strings.Split(commitStr, fieldSeparator)
	if len(fields) < 7 {
		return Commit{}, false
	}

	timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[6]), 10, 64)
	if err != nil {
		timestamp = 0
	}

	return Commit{
		SHA:         strings.TrimSpace(fields[0]),
		Short:       strings.TrimSpace(fields[1]),
		Subject:     strings.TrimSpace(fields[2]),
		Body:        strings.TrimSpace(fields[3]),
		Author:      strings.TrimSpace(fields[4]),
		AuthorEmail: strings.TrimSpace(fields[5]),
		Date:        time.Unix(timestamp, 0),
	}, true
}

// diffstatLineRegex matches the summary line of git diff --stat
// Example: " 3 files changed, 45 insertions(+), 12 deletions(-)"
var diffstatLineRegex = regexp.MustCompile(`(\d+)\s+files?\s+changed(?:,\s+(\d+)\s+insertions?\(\+\))?(?:,\s+(\d+)\s+deletions?\(-\))?`)

// emptyTreeSHA is the SHA of git's empty tree object.
// Used when diffing from a root commit (which has no parent).
const emptyTreeSHA = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Stat returns what commit sha changed under path.
// A root commit is compared against the empty tree.
func (r *Repo) Stat(ctx context.Context, sha, path string) (Diffstat, error) {
	from := r.resolveRefOrEmptyTree(ctx, sha+"^")
	out, err := r.run(ctx, "diff", "--stat", from, sha, "--", path)
	if err != nil {
		return Diffstat{}, output.NewSystemErrorWithCause("failed to get diffstat for "+sha, err)
	}
	return parseDiffstat(out), nil
}

// resolveRefOrEmptyTree resolves a ref, returning empty tree SHA if it doesn't exist.
// This handles the case of "SHA^" for root commits.
func (r *Repo) resolveRefOrEmptyTree(ctx context.Context, ref string) string {
	if ref == "" {
		return emptyTreeSHA
	}
	if _, err := r.run(ctx, "rev-parse", "--verify", "--quiet", ref); err != nil {
		return emptyTreeSHA
	}
	return ref
}

// parseDiffstat extracts file, insertion, and deletion counts from git diff --stat output.
func parseDiffstat(out string) Diffstat {
	summaryLine := findSummaryLine(out)
	if summaryLine == "" {
		return Diffstat{}
	}
	return extractDiffstatFromSummary(summaryLine)
}

// findSummaryLine finds the last non-empty line in the diff stat output.
func findSummaryLine(out string) string {
	lines := strings.Split(out, "\n")
	for idx := len(lines) - 1; idx >= 0; idx-- {
		line := strings.TrimSpace(lines[idx])
		if line != "" {
			return line
		}
	}
	return ""
}

// parseMatchInt extracts an int from a regex match group, returning 0 on error.
func parseMatchInt(matches []string, idx int) int {
	if idx >= len(matches) || matches[idx] == "" {
		return 0
	}
	val, err := strconv.Atoi(matches[idx])
	if err != nil {
		return 0
	}
	return val
}

// extractDiffstatFromSummary parses the diffstat summary line using regex.
func extractDiffstatFromSummary(summaryLine string) Diffstat {
	matches := diffstatLineRegex.FindStringSubmatch(summaryLine)
	if matches == nil {
		return Diffstat{}
	}

	return Diffstat{
		Files:      parseMatchInt(matches, 1),
		Insertions: parseMatchInt(matches, 2),
		Deletions:  parseMatchInt(matches, 3),
	}
}
