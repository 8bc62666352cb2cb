package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newHistoryCmd creates the history command.
func newHistoryCmd(factory handlerFactory) *cobra.Command {
	var statFlag bool

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show the commits that touched a note",
		Long: `Show the commits that touched a note, newest first. A deleted note's
history is still available.

Examples:
  zetta history 20260115150405
  zetta history 20260115150405 --stat   # Include lines added and removed
  zetta history 20260115150405 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.History(cmd.Context(), args[0], statFlag)
			})
		},
	}

	cmd.Flags().BoolVar(&statFlag, "stat", false, "Include a diffstat for each commit")

	return cmd
}
