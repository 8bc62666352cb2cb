// Package notebox owns the note collection on disk.
//
// A box is a directory (also a git work tree) with one subdirectory per
// note, named by the note's identifier and holding exactly one content file,
// README.md. A subdirectory without that file is not a note.
package notebox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/output"
)

// ErrNotFound is returned when a note identifier does not name a valid note.
var ErrNotFound = errors.New("note not found")

// ErrAlreadyExists is returned when creating a note whose directory exists.
var ErrAlreadyExists = errors.New("note already exists")

// ErrInvalidID is returned for identifiers that cannot name a note directory.
var ErrInvalidID = errors.New("invalid note id")

// ListStats reports what a scan over the box saw.
type ListStats struct {
	Total   int     // Note directories found
	Listed  int     // Notes read successfully
	Skipped int     // Notes that could not be read
	Errors  []error // One error per skipped note
}

func (st *ListStats) skip(err error) {
	st.Skipped++
	st.Errors = append(st.Errors, err)
}

// Store provides access to the notes under a box root.
type Store struct {
	paths Resolver
	log   zerolog.Logger
}

// NewStore creates a Store rooted at root. The root must already have been
// validated as an existing directory.
func NewStore(root string, logger zerolog.Logger) *Store {
	return &Store{paths: NewResolver(root), log: logger}
}

// Paths returns the store's path resolver.
func (s *Store) Paths() Resolver {
	return s.paths
}

// Exists reports whether id names a note whose content file exists and can
// be opened as a regular file.
func (s *Store) Exists(id string) bool {
	if ValidateID(id) != nil {
		return false
	}
	return isReadableFile(s.paths.ContentPath(id))
}

// Get reads a whole note.
func (s *Store) Get(id string) (*Note, error) {
	lines, err := s.ReadLines(id)
	if err != nil {
		return nil, err
	}

	title := ""
	if len(lines) > 0 {
		title = DeriveTitle(lines[0])
	}
	return &Note{
		ID:          id,
		Dir:         s.paths.Dir(id),
		ContentPath: s.paths.ContentPath(id),
		Title:       title,
		Lines:       lines,
	}, nil
}

// ReadTitle returns the note's derived display title.
func (s *Store) ReadTitle(id string) (string, error) {
	line, err := s.ReadTitleLine(id)
	if err != nil {
		return "", err
	}
	return DeriveTitle(line), nil
}

// ReadTitleLine returns the note's raw first line, used in commit messages.
func (s *Store) ReadTitleLine(id string) (string, error) {
	content, err := s.readContent(id)
	if err != nil {
		return "", err
	}
	return FirstLine(content), nil
}

// ReadLines returns the note's content split into lines, in file order.
func (s *Store) ReadLines(id string) ([]string, error) {
	content, err := s.readContent(id)
	if err != nil {
		return nil, err
	}
	return SplitLines(content), nil
}

func (s *Store) readContent(id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}
	path := s.paths.ContentPath(id)
	if !isRegularFile(path) {
		return "", NotFoundError(id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NotFoundError(id)
		}
		return "", classifyFSError("read", path, err)
	}
	return string(data), nil
}

// Create makes the note directory and writes content as its only file.
// The directory must not exist yet; an identifier collision fails with
// ErrAlreadyExists and leaves the existing note untouched. If writing the
// content file fails, the new directory is removed again.
func (s *Store) Create(id, content string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}

	dir := s.paths.Dir(id)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", output.NewConflictErrorWithCause("note already exists: "+id, ErrAlreadyExists)
		}
		return "", classifyFSError("create note directory", dir, err)
	}

	path := s.paths.ContentPath(id)
	if err := writeNewFile(path, content); err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("dir", dir).Msg("cleanup after failed create")
		}
		return "", classifyFSError("write", path, err)
	}

	s.log.Debug().Str("id", id).Str("path", path).Msg("note created")
	return path, nil
}

// Delete removes the note directory and everything in it.
func (s *Store) Delete(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if !isRegularFile(s.paths.ContentPath(id)) {
		return NotFoundError(id)
	}

	dir := s.paths.Dir(id)
	if err := os.RemoveAll(dir); err != nil {
		return classifyFSError("remove", dir, err)
	}

	s.log.Debug().Str("id", id).Str("dir", dir).Msg("note deleted")
	return nil
}

// ListIDs returns the identifiers of every note directly under the root,
// sorted lexicographically. Hidden entries (.git, .github, ...) are never
// notes; any other entry counts only if it holds the content file.
func (s *Store) ListIDs() ([]string, error) {
	root := s.paths.Root()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, classifyFSError("list", root, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if isRegularFile(s.paths.ContentPath(name)) {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Summaries returns "<id>: <title>" views of every note in identifier order.
// Notes that cannot be read are skipped and reported in the stats.
func (s *Store) Summaries() ([]Summary, *ListStats, error) {
	return s.scan(func(_ []string) bool { return true })
}

// Search returns the notes with at least one line containing pattern,
// compared case-insensitively. Each note is reported once, however many
// of its lines match.
func (s *Store) Search(pattern string) ([]Summary, *ListStats, error) {
	needle := strings.ToLower(pattern)
	return s.scan(func(lines []string) bool {
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line), needle) {
				return true
			}
		}
		return false
	})
}

func (s *Store) scan(match func(lines []string) bool) ([]Summary, *ListStats, error) {
	ids, err := s.ListIDs()
	if err != nil {
		return nil, nil, err
	}

	stats := &ListStats{Total: len(ids)}
	summaries := make([]Summary, 0, len(ids))
	for _, id := range ids {
		lines, readErr := s.ReadLines(id)
		if readErr != nil {
			stats.skip(readErr)
			continue
		}
		stats.Listed++
		if !match(lines) {
			continue
		}

		title := ""
		if len(lines) > 0 {
			title = DeriveTitle(lines[0])
		}
		summaries = append(summaries, Summary{ID: id, Title: title})
	}
	return summaries, stats, nil
}

// NotFoundError reports that no note with id exists. It matches ErrNotFound.
func NotFoundError(id string) error {
	return output.NewUserErrorWithCause("note with id "+id+" does not exist", ErrNotFound)
}

// classifyFSError turns an os error into an exit-coded error naming the path.
func classifyFSError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return output.NewSystemErrorWithCause(
			fmt.Sprintf("permission denied: cannot %s %s; check the box's file permissions", op, path), err)
	case errors.Is(err, fs.ErrNotExist):
		return output.NewSystemErrorWithCause(
			fmt.Sprintf("cannot %s %s: no such file or directory", op, path), err)
	default:
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to %s %s: %v", op, path, err), err)
	}
}

// writeNewFile creates path exclusively and writes content to it.
func writeNewFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isReadableFile(path string) bool {
	if !isRegularFile(path) {
		return false
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}
