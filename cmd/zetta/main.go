// Package main provides the entry point for the zetta CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/config"
	"github.com/gorewood/zetta/internal/envfile"
	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// isDebugMode reads the --debug persistent flag.
func isDebugMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("debug")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("debug")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(quietErrors))
	return output.GetExitCode(err)
}

// quietErrors leaves error reporting to the commands, which print through
// the output.Printer so --json gets a structured error.
// Errors cobra raises before a command runs (unknown command, bad flag) are
// still shown.
func quietErrors(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the zetta CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultHandler)
}

// newRootCmdWith creates the root command with every note command built on factory.
func newRootCmdWith(factory handlerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zetta",
		Short: "A box of notes kept in git",
		Long: `Zetta - a tool for managing a "box of notes".

Every note is a directory in a git repository holding a single README.md.
The first line of the note is its title. Creating, editing and deleting a
note offers to commit the change with a message derived from the note.

Point ZETTA_BOX at the git repository that stores your notes. The editor is
taken from ZETTA_EDITOR, then EDITOR, then config.yaml, then vi.

All query commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'zetta --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env, then the global env file) so ZETTA_BOX can
	// live next to a project. Environment variables always take precedence.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := loadEnvFiles(); err != nil && isDebugMode(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "env files: %v\n", err)
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always, never (default from config, else auto)")
	cmd.PersistentFlags().Bool("debug", false, "Trace git and editor invocations to stderr")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, factory)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env (global fallback)
func loadEnvFiles() error {
	return envfile.LoadAll(".env.local", ".env", config.EnvFilePath())
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "note", Title: "Note Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, factory handlerFactory) {
	addGroupedCommand(cmd, newCreateCmd(factory), "note")
	addGroupedCommand(cmd, newEditCmd(factory), "note")
	addGroupedCommand(cmd, newDeleteCmd(factory), "note")

	addGroupedCommand(cmd, newShowCmd(factory), "query")
	addGroupedCommand(cmd, newListCmd(factory), "query")
	addGroupedCommand(cmd, newSearchCmd(factory), "query")
	addGroupedCommand(cmd, newHistoryCmd(factory), "query")
	addGroupedCommand(cmd, newExportCmd(factory), "query")

	addGroupedCommand(cmd, newTemplatesCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// finish reports err through the printer and decides whether the process
// fails. A missing note and an identifier collision are reported but are
// not failures.
func finish(printer *output.Printer, err error) error {
	if err == nil {
		return nil
	}
	printer.Error(err)
	if errors.Is(err, notebox.ErrNotFound) || errors.Is(err, notebox.ErrAlreadyExists) {
		return nil
	}
	return err
}
