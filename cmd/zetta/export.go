package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
)

// newExportCmd creates the export command.
func newExportCmd(factory handlerFactory) *cobra.Command {
	var opts actions.ExportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every note as JSON or Markdown",
		Long: `Export every note with its commit count and last commit date.

Without --out the export is written to stdout. With --out each note is
written to its own file in that directory.

Examples:
  zetta export                             # JSON array to stdout
  zetta export --format markdown           # Markdown with YAML frontmatter
  zetta export --format md --out ./backup  # One <id>.md file per note`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHandler(cmd, factory, func(h *actions.Handler) error {
				return h.Export(cmd.Context(), opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", actions.FormatJSON, "Export format: json or markdown")
	cmd.Flags().StringVar(&opts.OutDir, "out", "", "Write one file per note into this directory")

	return cmd
}
