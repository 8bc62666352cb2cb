package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newDeleteCmd creates the delete command against factory.
func newDeleteCmd(factory handlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note after confirmation",
		Long: `Show the note's title, ask for confirmation, remove the note directory and
offer to commit the removal. Only an answer of exactly "y" deletes.

Examples:
  zetta delete 20260115150405`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.Delete(cmd.Context(), args[0])
			})
		},
	}
}
