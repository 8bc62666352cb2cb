package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newShowCmd creates the show command.
func newShowCmd(factory handlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Long: `Print every line of a note with trailing whitespace removed.

Examples:
  zetta show 20260115150405          # Print the note
  zetta show 20260115150405 --json   # Identifier, title, lines and content`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.Show(args[0])
			})
		},
	}
}
