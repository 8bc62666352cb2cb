package actions

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
	"github.com/gorewood/zetta/internal/prompt"
)

// --- Test Helpers ---

type recordedCommit struct {
	message string
	paths   []string
}

// fakeVCS records staging and commits instead of running git.
type fakeVCS struct {
	staged    []string
	removed   []string
	commits   []recordedCommit
	commitErr error
	stageErr  error
	history   map[string][]git.Commit
	stats     map[string]git.Diffstat
}

func (f *fakeVCS) Stage(_ context.Context, path string) error {
	if f.stageErr != nil {
		return f.stageErr
	}
	f.staged = append(f.staged, path)
	return nil
}

func (f *fakeVCS) StageRemoval(_ context.Context, path string) error {
	if f.stageErr != nil {
		return f.stageErr
	}
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeVCS) Commit(_ context.Context, message string, paths ...string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits = append(f.commits, recordedCommit{message: message, paths: paths})
	return nil
}

func (f *fakeVCS) Log(_ context.Context, path string) ([]git.Commit, error) {
	return f.history[path], nil
}

func (f *fakeVCS) Stat(_ context.Context, sha, _ string) (git.Diffstat, error) {
	return f.stats[sha], nil
}

// fakeEditor optionally rewrites the file it is asked to edit.
type fakeEditor struct {
	write string
	err   error
	calls []string
}

func (f *fakeEditor) Edit(_ context.Context, path string) error {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return f.err
	}
	if f.write != "" {
		return os.WriteFile(path, []byte(f.write), 0o600)
	}
	return nil
}

// harness bundles a Handler with everything a test inspects afterwards.
type harness struct {
	handler   *Handler
	root      string
	vcs       *fakeVCS
	editor    *fakeEditor
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	questions *bytes.Buffer
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	input string
	json  bool
	ids   []string
}

func withInput(input string) harnessOption {
	return func(c *harnessConfig) { c.input = input }
}

func withJSON() harnessOption {
	return func(c *harnessConfig) { c.json = true }
}

func withIDs(ids ...string) harnessOption {
	return func(c *harnessConfig) { c.ids = ids }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	cfg := &harnessConfig{ids: []string{"20230101000000"}}
	for _, opt := range opts {
		opt(cfg)
	}

	root := t.TempDir()
	h := &harness{
		root:      root,
		vcs:       &fakeVCS{history: map[string][]git.Commit{}, stats: map[string]git.Diffstat{}},
		editor:    &fakeEditor{},
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		questions: &bytes.Buffer{},
	}

	ids := cfg.ids
	nextID := func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}

	h.handler = New(Deps{
		Store:   notebox.NewStore(root, zerolog.Nop()),
		VCS:     h.vcs,
		Editor:  h.editor,
		Prompt:  prompt.New(strings.NewReader(cfg.input), h.questions),
		Printer: output.NewPrinter(h.stdout, cfg.json, false).WithStderr(h.stderr),
		NewID:   nextID,
		Now:     func() time.Time { return time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC) },
		Logger:  zerolog.Nop(),
	})
	return h
}

func (h *harness) writeNote(t *testing.T, id, content string) {
	t.Helper()
	dir := filepath.Join(h.root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, notebox.ContentFile), []byte(content), 0o600))
}

func (h *harness) readNote(t *testing.T, id string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.root, id, notebox.ContentFile))
	require.NoError(t, err)
	return string(data)
}

func nothingToCommit() error {
	return output.NewSystemErrorWithCause("nothing to commit", git.ErrNothingToCommit)
}

func commitAt(sha, subject string, when time.Time) git.Commit {
	return git.Commit{SHA: sha + strings.Repeat("0", 40-len(sha)), Short: sha, Subject: subject, Date: when}
}

func rel(id string) string {
	return id + string(os.PathSeparator) + notebox.ContentFile
}
