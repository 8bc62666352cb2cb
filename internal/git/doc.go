// Package git provides Git operations via exec for the zetta CLI.
//
// This package wraps git commands by shelling out to the git executable,
// capturing stdout/stderr and translating exit codes to appropriate errors.
// A Repo is bound to the note box directory and never touches files outside
// the paths it is handed.
//
// # Opening the Box Repository
//
//	repo, err := git.Open(ctx, boxRoot, logger) // fails with ErrNotARepository
//
// # Recording Changes
//
//	repo.Stage(ctx, "20240101120000/README.md")
//	repo.Commit(ctx, "20240101120000: # Groceries", "20240101120000/README.md")
//
//	repo.StageRemoval(ctx, "20240101120000")
//	repo.Commit(ctx, "deleted 20240101120000", "20240101120000")
//
// Commit reports ErrNothingToCommit when nothing is staged under the given
// paths. Callers usually treat that as a warning, not a failure.
//
// # History
//
//	commits, err := repo.Log(ctx, "20240101120000")
//	stat, err := repo.Stat(ctx, commits[0].SHA, "20240101120000")
//
// # Running Git Commands
//
// For custom git commands, use Run or RunContext:
//
//	output, err := git.Run(dir, "status", "--short")
//	output, err := git.RunContext(ctx, dir, "log", "--oneline", "-5")
//
// # Error Handling
//
// All functions return errors wrapped with appropriate exit codes:
//   - ExitSystemError (2) for git failures and a missing git binary
//   - ExitConfigError (4) when the box is not inside a work tree
//
// Failed invocations carry a *CommandError with the exit code and output.
package git
