package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newEditCmd creates the edit command against factory.
func newEditCmd(factory handlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Open an existing note in the editor",
		Long: `Open an existing note in the editor, then offer to commit the change.

Examples:
  zetta edit 20260115150405`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.Edit(cmd.Context(), args[0])
			})
		},
	}
}
