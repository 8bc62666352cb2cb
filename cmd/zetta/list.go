package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newListCmd creates the list command.
func newListCmd(factory handlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every note as '<id>: <title>'",
		Long: `List every note in the box, one '<id>: <title>' line per note, in
identifier order. Directories without a readable README.md are skipped with
a warning.

Examples:
  zetta list
  zetta list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.List()
			})
		},
	}
}
