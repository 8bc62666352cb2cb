package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/zetta/internal/actions"
	"github.com/gorewood/zetta/internal/config"
	"github.com/gorewood/zetta/internal/editor"
	"github.com/gorewood/zetta/internal/git"
	"github.com/gorewood/zetta/internal/logging"
	"github.com/gorewood/zetta/internal/notebox"
	"github.com/gorewood/zetta/internal/output"
	"github.com/gorewood/zetta/internal/prompt"
	"github.com/gorewood/zetta/internal/template"
)

// handlerFactory builds the actions.Handler a note command runs against.
// Tests substitute a factory that wires fakes for git and the editor.
type handlerFactory func(cmd *cobra.Command) (*actions.Handler, error)

// box is an opened note box: the resolved settings, the repository and the
// logger every component shares.
type box struct {
	settings *config.Settings
	repo     *git.Repo
	store    *notebox.Store
	log      zerolog.Logger
}

// openBox resolves configuration and validates the box. Every failure here
// is a configuration error (exit 4) except a missing git binary.
func openBox(cmd *cobra.Command) (*box, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd, settings.Debug || isDebugMode(cmd))

	root, err := settings.BoxRoot()
	if err != nil {
		return nil, err
	}

	repo, err := git.Open(cmd.Context(), root, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("box", repo.Dir()).Str("editor", settings.Editor).Msg("box opened")
	return &box{
		settings: settings,
		repo:     repo,
		store:    notebox.NewStore(root, logger),
		log:      logger,
	}, nil
}

// newLogger returns the debug trace logger. With --json the trace is JSON
// lines as well.
func newLogger(cmd *cobra.Command, debug bool) zerolog.Logger {
	if debug && isJSONMode(cmd) {
		return logging.NewJSON(cmd.ErrOrStderr())
	}
	return logging.New(cmd.ErrOrStderr(), debug)
}

// defaultHandler wires the real git repository, editor and terminal prompt.
func defaultHandler(cmd *cobra.Command) (*actions.Handler, error) {
	b, err := openBox(cmd)
	if err != nil {
		return nil, err
	}

	newID, err := notebox.NewIDGenerator(b.settings.IDPolicy, time.Now)
	if err != nil {
		return nil, output.NewConfigErrorWithCause("invalid configuration: "+err.Error(), config.ErrConfiguration)
	}

	return actions.New(actions.Deps{
		Store:     b.store,
		VCS:       b.repo,
		Editor:    editor.New(b.settings.Editor, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), b.log),
		Prompt:    prompt.New(cmd.InOrStdin(), promptWriter(cmd)),
		Printer:   newPrinter(cmd, b.settings.Color),
		Templates: template.NewLoader(config.TemplatesDir()),
		NewID:     newID,
		Logger:    b.log,
	}), nil
}

// promptWriter keeps stdout clean for scripts: questions go to stderr when
// --json is set.
func promptWriter(cmd *cobra.Command) io.Writer {
	if isJSONMode(cmd) {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// newPrinter builds the command's printer. An explicit --color wins over
// the configured color mode.
func newPrinter(cmd *cobra.Command, configured string) *output.Printer {
	mode := configured
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil && flag.Changed {
		mode = flag.Value.String()
	}
	out := cmd.OutOrStdout()
	useColor := output.ResolveColorMode(mode, output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), useColor).WithStderr(cmd.ErrOrStderr())
}

// fallbackPrinter reports errors raised before a handler exists.
func fallbackPrinter(cmd *cobra.Command) *output.Printer {
	return newPrinter(cmd, config.ColorAuto)
}

// withHandler builds a handler through factory and runs fn against it.
// Errors from either step are printed and exit-coded through finish.
func withHandler(cmd *cobra.Command, factory handlerFactory, fn func(h *actions.Handler) error) error {
	handler, err := factory(cmd)
	if err != nil {
		return finish(fallbackPrinter(cmd), err)
	}
	return finish(handler.Printer(), fn(handler))
}
