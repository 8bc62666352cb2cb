package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	zettamcp "github.com/gorewood/zetta/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run zetta as a Model Context Protocol (MCP) server over stdio.

The server exposes the box read-only so an agent can look notes up without
an editor or a terminal prompt. Notes are never created, changed or
committed through it.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "zetta": {
        "command": "zetta",
        "args": ["serve"],
        "env": {"ZETTA_BOX": "/path/to/notes"}
      }
    }
  }

Available tools: list_notes, search_notes, show_note, note_history, box_status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBox(cmd)
			if err != nil {
				return finish(fallbackPrinter(cmd), err)
			}
			server := zettamcp.NewServer(buildVersion(), b.store, b.repo)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
