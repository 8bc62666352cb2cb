// Package mcp provides a Model Context Protocol server for zetta.
// It exposes read-only note operations as MCP tools that any MCP-capable
// agent can use. Creating, editing and deleting notes need the interactive
// editor and confirmations, so they are not offered here.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/notebox"
)

// History reads the commits that touched a path in the box repository.
type History interface {
	Log(ctx context.Context, path string) ([]git.Commit, error)
}

// NewServer creates an MCP server with all zetta tools registered.
func NewServer(version string, store *notebox.Store, history History) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "zetta",
		Version: version,
	}, nil)
	registerTools(server, store, history)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all zetta tools to the server.
func registerTools(server *mcp.Server, store *notebox.Store, history History) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List every note in the box as id and title, in identifier order.",
		Annotations: readOnlyAnnotations(),
	}, handleList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Find notes containing a pattern (case-insensitive substring). Each note is reported once.",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_note",
		Description: "Return the full content of a note by id.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "note_history",
		Description: "List the git commits that touched a note, newest first. Works for deleted notes too.",
		Annotations: readOnlyAnnotations(),
	}, handleHistory(store, history))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "box_status",
		Description: "Show the box root, how many notes it holds and which could not be read.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store))
}
