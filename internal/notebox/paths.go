package notebox

import (
	"os"
	"strings"
)

// ContentFile is the fixed name of the single file inside every note directory.
const ContentFile = "README.md"

// Resolver derives on-disk locations from a note identifier.
// It performs no I/O.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver for the given box root. The root is
// normalised to end in exactly one path separator, so Dir and ContentPath
// never produce doubled or missing separators.
func NewResolver(root string) Resolver {
	return Resolver{root: normalizeRoot(root)}
}

// Root returns the normalised root, always ending in a separator.
func (r Resolver) Root() string {
	return r.root
}

// Dir returns the directory holding the note.
func (r Resolver) Dir(id string) string {
	return r.root + id
}

// ContentPath returns the path of the note's content file.
func (r Resolver) ContentPath(id string) string {
	return r.root + id + string(os.PathSeparator) + ContentFile
}

// RelContentPath returns the content file path relative to the root, the
// form handed to git as a pathspec.
func (r Resolver) RelContentPath(id string) string {
	return id + string(os.PathSeparator) + ContentFile
}

func normalizeRoot(root string) string {
	sep := string(os.PathSeparator)
	return strings.TrimRight(root, "/"+sep) + sep
}
