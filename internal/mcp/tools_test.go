package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
)

// --- Mock history ---

type mockHistory struct {
	commits map[string][]git.Commit
	err     error
}

func (m *mockHistory) Log(_ context.Context, path string) ([]git.Commit, error) {
	return m.commits[path], m.err
}

// --- Test helpers ---

func makeTestStore(t *testing.T, notes map[string]string) *notebox.Store {
	t.Helper()
	root := t.TempDir()
	for id, content := range notes {
		dir := filepath.Join(root, id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("creating note dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, notebox.ContentFile), []byte(content), 0o600); err != nil {
			t.Fatalf("writing test note: %v", err)
		}
	}
	return notebox.NewStore(root, zerolog.Nop())
}

func makeCommit(short, subject string, when time.Time) git.Commit {
	return git.Commit{SHA: short + "000000000000000000000000000000000", Short: short, Subject: subject, Author: "Ann", Date: when}
}

// --- List handler tests ---

func TestHandleList(t *testing.T) {
	store := makeTestStore(t, map[string]string{
		"20230102000000": "B\n",
		"20230101000000": "# A\n",
	})
	handler := handleList(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if out.Notes[0] != (NoteRef{ID: "20230101000000", Title: "A"}) {
		t.Errorf("Notes[0] = %+v", out.Notes[0])
	}
	if out.Notes[1] != (NoteRef{ID: "20230102000000", Title: "B"}) {
		t.Errorf("Notes[1] = %+v", out.Notes[1])
	}
}

func TestHandleList_Empty(t *testing.T) {
	handler := handleList(makeTestStore(t, nil))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 0 || out.Notes == nil {
		t.Errorf("out = %+v, want zero count with empty (non-nil) notes", out)
	}
}

// --- Search handler tests ---

func TestHandleSearch(t *testing.T) {
	store := makeTestStore(t, map[string]string{
		"a": "# Greeting\nHello World\n",
		"b": "# Other\n",
	})
	handler := handleSearch(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, SearchInput{Pattern: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Notes[0].ID != "a" {
		t.Errorf("out = %+v, want only note a", out)
	}
}

func TestHandleSearch_EmptyPattern(t *testing.T) {
	handler := handleSearch(makeTestStore(t, nil))

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, SearchInput{})
	if err == nil {
		t.Error("expected error for empty pattern")
	}
}

// --- Show handler tests ---

func TestHandleShow(t *testing.T) {
	store := makeTestStore(t, map[string]string{"a": "# Alpha\nbody\n"})
	handler := handleShow(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ShowInput{ID: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "Alpha" {
		t.Errorf("Title = %q, want Alpha", out.Title)
	}
	if out.Content != "# Alpha\nbody\n" {
		t.Errorf("Content = %q", out.Content)
	}
	if len(out.Lines) != 2 {
		t.Errorf("Lines = %v", out.Lines)
	}
}

func TestHandleShow_Errors(t *testing.T) {
	handler := handleShow(makeTestStore(t, nil))

	tests := []struct {
		name   string
		input  ShowInput
		target error
	}{
		{"missing id", ShowInput{}, nil},
		{"unknown note", ShowInput{ID: "nope"}, notebox.ErrNotFound},
		{"path escape", ShowInput{ID: "../x"}, notebox.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

// --- History handler tests ---

func TestHandleHistory(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := makeTestStore(t, map[string]string{"a": "# A\n"})
	history := &mockHistory{commits: map[string][]git.Commit{
		"a": {
			makeCommit("bbb2222", "a: # A v2", now),
			makeCommit("aaa1111", "a: # A", now.Add(-time.Hour)),
		},
	}}
	handler := handleHistory(store, history)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, HistoryInput{ID: "a", Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Exists {
		t.Error("Exists = false, want true")
	}
	if out.Count != 1 || out.Commits[0].Short != "bbb2222" {
		t.Errorf("out = %+v, want newest commit only", out)
	}
	if out.Commits[0].Date != "2024-03-01T12:00:00Z" {
		t.Errorf("Date = %q", out.Commits[0].Date)
	}
}

func TestHandleHistory_DeletedNote(t *testing.T) {
	store := makeTestStore(t, nil)
	history := &mockHistory{commits: map[string][]git.Commit{
		"gone": {makeCommit("ccc3333", "deleted gone", time.Now())},
	}}

	_, out, err := handleHistory(store, history)(context.Background(), &mcp.CallToolRequest{}, HistoryInput{ID: "gone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Exists {
		t.Error("Exists = true for a deleted note")
	}
	if out.Count != 1 {
		t.Errorf("Count = %d, want 1", out.Count)
	}
}

func TestHandleHistory_UnknownNote(t *testing.T) {
	handler := handleHistory(makeTestStore(t, nil), &mockHistory{})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, HistoryInput{ID: "nope"})
	if !errors.Is(err, notebox.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestHandleHistory_LogError(t *testing.T) {
	store := makeTestStore(t, map[string]string{"a": "# A\n"})
	handler := handleHistory(store, &mockHistory{err: errors.New("git broke")})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, HistoryInput{ID: "a"})
	if err == nil {
		t.Error("expected error when git log fails")
	}
}

// --- Status handler tests ---

func TestHandleStatus(t *testing.T) {
	store := makeTestStore(t, map[string]string{"a": "# A\n", "b": "# B\n"})

	_, out, err := handleStatus(store)(context.Background(), &mcp.CallToolRequest{}, StatusInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NoteCount != 2 {
		t.Errorf("NoteCount = %d, want 2", out.NoteCount)
	}
	if out.Readable != 2 {
		t.Errorf("Readable = %d, want 2", out.Readable)
	}
	if len(out.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", out.Skipped)
	}
	if out.Root != store.Paths().Root() {
		t.Errorf("Root = %q", out.Root)
	}
}

func TestHandleStatus_UnreadableNote(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	store := makeTestStore(t, map[string]string{"a": "# A\n", "b": "# B\n"})
	locked := filepath.Join(store.Paths().Root(), "b", notebox.ContentFile)
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o600) })

	_, out, err := handleStatus(store)(context.Background(), &mcp.CallToolRequest{}, StatusInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NoteCount != 2 {
		t.Errorf("NoteCount = %d, want 2", out.NoteCount)
	}
	if out.Readable != 1 {
		t.Errorf("Readable = %d, want 1", out.Readable)
	}
	if len(out.Skipped) != 1 {
		t.Errorf("Skipped = %v, want one entry", out.Skipped)
	}
}

// --- Server wiring ---

func TestNewServer_RegistersReadOnlyTools(t *testing.T) {
	ctx := context.Background()
	server := NewServer("test", makeTestStore(t, nil), &mockHistory{})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %s is not annotated read-only", tool.Name)
		}
	}
	sort.Strings(names)
	want := []string{"box_status", "list_notes", "note_history", "search_notes", "show_note"}
	if len(names) != len(want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tools = %v, want %v", names, want)
			break
		}
	}
}
