package git

import (
	"context"
	"testing"
)

func TestParseCommits(t *testing.T) {
	out := "abc123" + fieldSeparator + "abc" + fieldSeparator + "a: # A" + fieldSeparator + "" +
		fieldSeparator + "Ann" + fieldSeparator + "ann@example.com" + fieldSeparator + "1700000000" + commitSeparator +
		"\ndef456" + fieldSeparator + "def" + fieldSeparator + "deleted b" + fieldSeparator + "body" +
		fieldSeparator + "Bob" + fieldSeparator + "bob@example.com" + fieldSeparator + "not-a-number" + commitSeparator +
		"\ngarbage" + commitSeparator

	commits, err := parseCommits(out)
	if err != nil {
		t.Fatalf("parseCommits() error = %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("parseCommits() returned %d commits, want 2", len(commits))
	}
	if commits[0].Subject != "a: # A" || commits[0].Author != "Ann" || commits[0].Date.Unix() != 1700000000 {
		t.Errorf("first commit = %+v", commits[0])
	}
	if commits[1].Body != "body" || commits[1].Date.Unix() != 0 {
		t.Errorf("second commit = %+v", commits[1])
	}

	empty, err := parseCommits("")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("parseCommits(\"\") = %v, %v; want empty non-nil slice", empty, err)
	}
}

func TestLog(t *testing.T) {
	ctx := context.Background()

	t.Run("repository without commits", func(t *testing.T) {
		repo := newTestRepo(t)

		commits, err := repo.Log(ctx, "anything")
		if err != nil {
			t.Fatalf("Log() error = %v", err)
		}
		if len(commits) != 0 {
			t.Errorf("Log() = %v, want empty", commits)
		}
	})

	t.Run("path is matched literally, not as a pattern", func(t *testing.T) {
		repo := newTestRepo(t)
		note := writeNote(t, repo, "20230101000000", "# A\n")
		commitPath(t, repo, note, "20230101000000: # A")

		for _, pattern := range []string{"2023*", "2023010100000?", ":(glob)2023*"} {
			commits, err := repo.Log(ctx, pattern)
			if err != nil {
				t.Fatalf("Log(%q) error = %v", pattern, err)
			}
			if len(commits) != 0 {
				t.Errorf("Log(%q) = %v, want no commits", pattern, commits)
			}
		}
	})

	t.Run("history is scoped to the note, newest first", func(t *testing.T) {
		repo := newTestRepo(t)
		first := writeNote(t, repo, "one", "# One\n")
		other := writeNote(t, repo, "two", "# Two\n")
		commitPath(t, repo, first, "one: # One")
		commitPath(t, repo, other, "two: # Two")
		writeNote(t, repo, "one", "# One\nmore\n")
		commitPath(t, repo, first, "one: # One")

		commits, err := repo.Log(ctx, "one")
		if err != nil {
			t.Fatalf("Log() error = %v", err)
		}
		if len(commits) != 2 {
			t.Fatalf("Log() returned %d commits, want 2", len(commits))
		}
		for _, c := range commits {
			if c.Subject != "one: # One" {
				t.Errorf("unexpected commit in history: %q", c.Subject)
			}
			if len(c.SHA) != 40 {
				t.Errorf("SHA %q is not a full SHA", c.SHA)
			}
		}
		if commits[0].Date.Before(commits[1].Date) {
			t.Error("Log() should list newest commit first")
		}
	})
}

func TestStat(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	path := writeNote(t, repo, "n", "# N\nline\n")
	commitPath(t, repo, path, "n: # N")

	commits, err := repo.Log(ctx, "n")
	if err != nil || len(commits) != 1 {
		t.Fatalf("Log() = %v, %v", commits, err)
	}

	stat, err := repo.Stat(ctx, commits[0].SHA, "n")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	want := Diffstat{Files: 1, Insertions: 2, Deletions: 0}
	if stat != want {
		t.Errorf("Stat() on root commit = %+v, want %+v", stat, want)
	}
}

func TestParseDiffstat(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Diffstat
	}{
		{"empty", "", Diffstat{}},
		{"full", " a/README.md | 3 ++-\n 1 file changed, 2 insertions(+), 1 deletion(-)", Diffstat{1, 2, 1}},
		{"insertions only", " 2 files changed, 10 insertions(+)", Diffstat{2, 10, 0}},
		{"deletions only", " 1 file changed, 4 deletions(-)", Diffstat{1, 0, 4}},
		{"no summary", "nonsense", Diffstat{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDiffstat(tt.out); got != tt.want {
				t.Errorf("parseDiffstat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func commitPath(t *testing.T, repo *Repo, path, message string) {
	t.Helper()
	ctx := context.Background()
	if err := repo.Stage(ctx, path); err != nil {
		t.Fatal(err)
	}
	if err := repo.Commit(ctx, message, path); err != nil {
		t.Fatal(err)
	}
}
