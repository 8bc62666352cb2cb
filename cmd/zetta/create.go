package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newCreateCmd creates the create command against factory.
func newCreateCmd(factory handlerFactory) *cobra.Command {
	var opts actions.CreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new note and open it in the editor",
		Long: `Create a new note with a fresh identifier and open it in the editor.

The note starts with the title line from --title, the template's title, or
"# ". When the editor exits you are asked whether to commit the note.

Examples:
  zetta create                         # Start from "# "
  zetta create --title "# Reading list"
  zetta create --template meeting      # Start from a template (see 'zetta templates')`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				_, err := h.Create(cmd.Context(), opts)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Initial title line for the note")
	cmd.Flags().StringVar(&opts.Template, "template", "", "Start from a named template")

	return cmd
}
