package git

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/output"
)

// nothingToCommitMarkers are the phrases git prints when a commit has no changes.
var nothingToCommitMarkers = []string{
	"nothing to commit",
	"nothing added to commit",
	"no changes added to commit",
}

// Repo runs git against one working directory: the note box.
// It only ever stages the paths it is given and only ever appends commits.
type Repo struct {
	dir string
	log zerolog.Logger
}

// Open validates that dir is inside a git work tree and returns a Repo for it.
func Open(ctx context.Context, dir string, logger zerolog.Logger) (*Repo, error) {
	repo := &Repo{dir: dir, log: logger}
	if err := repo.Validate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// Dir returns the working directory the repo runs in.
func (r *Repo) Dir() string {
	return r.dir
}

// Validate checks that the directory is a git working tree.
// A missing git binary is reported as such rather than as ErrNotARepository.
func (r *Repo) Validate(ctx context.Context) error {
	out, err := r.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		if errors.Is(err, ErrGitNotFound) {
			return err
		}
		return output.NewConfigErrorWithCause(
			r.dir+" is not a git repository; run 'git init' there first", errors.Join(ErrNotARepository, err))
	}
	if out != "true" {
		return output.NewConfigErrorWithCause(
			r.dir+" is not inside a git work tree", ErrNotARepository)
	}
	return nil
}

// Stage adds path to the index.
func (r *Repo) Stage(ctx context.Context, path string) error {
	if _, err := r.run(ctx, "add", "--", path); err != nil {
		return output.NewSystemErrorWithCause("failed to stage "+path, err)
	}
	return nil
}

// StageRemoval removes path (recursively) from the index, keeping nothing
// in the working tree untouched. Paths git never tracked are ignored, so the
// following Commit reports ErrNothingToCommit instead of a pathspec error.
func (r *Repo) StageRemoval(ctx context.Context, path string) error {
	if _, err := r.run(ctx, "rm", "-r", "--cached", "--ignore-unmatch", "--quiet", "--", path); err != nil {
		return output.NewSystemErrorWithCause("failed to stage removal of "+path, err)
	}
	return nil
}

// HasStagedChanges reports whether the index differs from HEAD under paths.
func (r *Repo) HasStagedChanges(ctx context.Context, paths ...string) (bool, error) {
	args := append([]string{"diff", "--cached", "--quiet", "--"}, paths...)
	_, err := r.run(ctx, args...)
	if err == nil {
		return false, nil
	}
	if exitCode(err) == 1 {
		return true, nil
	}
	return false, output.NewSystemErrorWithCause("failed to inspect staged changes", err)
}

// Commit records a commit with message, restricted to paths when given.
// It fails with ErrNothingToCommit when nothing is staged under paths; any
// other git failure matches ErrCommandFailed.
func (r *Repo) Commit(ctx context.Context, message string, paths ...string) error {
	staged, err := r.HasStagedChanges(ctx, paths...)
	if err != nil {
		return err
	}
	if !staged {
		return nothingToCommit(message)
	}

	args := []string{"commit", "--quiet", "-m", message}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	if _, err := r.run(ctx, args...); err != nil {
		if isNothingToCommit(err) {
			return nothingToCommit(message)
		}
		return output.NewSystemErrorWithCause("git commit failed: "+message, err)
	}
	return nil
}

// HasCommits reports whether HEAD points at a commit.
func (r *Repo) HasCommits(ctx context.Context) bool {
	_, err := r.run(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	// Note identifiers are file names, never patterns.
	args = append([]string{"--literal-pathspecs"}, args...)
	r.log.Debug().Str("dir", r.dir).Strs("args", args).Msg("git")
	out, err := RunContext(ctx, r.dir, args...)
	if err != nil {
		r.log.Debug().Err(err).Int("exit", exitCode(err)).Msg("git failed")
	}
	return out, err
}

func isNothingToCommit(err error) bool {
	text := strings.ToLower(combinedOutput(err))
	for _, marker := range nothingToCommitMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func nothingToCommit(message string) error {
	return output.NewSystemErrorWithCause("nothing to commit for "+message, ErrNothingToCommit)
}
