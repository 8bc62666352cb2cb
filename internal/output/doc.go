// Package output provides structured output handling for the zetta CLI.
//
// Every command writes through a Printer so that the same code path serves
// a human at a terminal and a script consuming --json output.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.NoteLine(id, title)        // "<id>: <title>" for list/search
//	printer.Success(map[string]any{"message": "committed", "id": id})
//	printer.Warn("could not commit deletion")
//	printer.Error(err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "id": "...", ...}
//	// Error: {"error": "message", "code": N}
//	// Warning: {"warning": "message"}
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success, including recovered not-found/cancelled outcomes
//	output.ExitUserError   // 1: User error (bad args, invalid note id)
//	output.ExitSystemError // 2: System error (git failed, editor failed, I/O error)
//	output.ExitConflict    // 3: Conflict (note already exists)
//	output.ExitConfigError // 4: Configuration error (box unset or not a git work tree)
//
// Use the constructors (NewUserError, NewSystemErrorWithCause, NewConfigError, ...)
// so that the code travels with the error up to main.
package output
