package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newSearchCmd creates the search command.
func newSearchCmd(factory handlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "List notes containing a pattern",
		Long: `List the notes with a line containing pattern as a literal substring,
ignoring case. Each note is listed once.

Examples:
  zetta search kubernetes
  zetta search "TODO" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.Search(args[0])
			})
		},
	}
}
