package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/config"
	"github.com/gorewood/zetta/internal/template"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the templates available to 'zetta create --template'",
		Long: `List the note templates available to 'zetta create --template'.

Templates are Markdown files with an optional YAML frontmatter holding a
description and a title line. Files in <config dir>/templates override the
built-in templates of the same name.

Examples:
  zetta templates
  zetta templates --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplates(cmd, template.NewLoader(config.TemplatesDir()))
		},
	}
}

// runTemplates prints the templates loader can resolve.
func runTemplates(cmd *cobra.Command, loader *template.Loader) error {
	printer := fallbackPrinter(cmd)
	infos := loader.List()

	if printer.IsJSON() {
		if infos == nil {
			infos = []template.Info{}
		}
		return printer.WriteJSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}
