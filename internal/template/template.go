// Package template loads note templates: Markdown files with optional YAML
// frontmatter that seed the content of a newly created note.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/zetta/internal/output"
)

// Template sources.
const (
	SourceBuiltin = "built-in"
	SourceUser    = "user"
)

// DefaultTitle is the first line of a note when neither a title nor a
// template title is given.
const DefaultTitle = "# "

// ErrNotFound is returned when no template matches a name.
var ErrNotFound = errors.New("template not found")

// Template represents a note template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Title       string `yaml:"title"`

	// Template body (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display
	Source string `yaml:"-"`
}

// Info provides template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"`
}

// Loader resolves templates from a user directory first, then the built-ins.
type Loader struct {
	sources []source
}

// source is one place templates are read from, in resolution order.
type source struct {
	name string
	fsys fs.FS
}

// NewLoader creates a Loader reading user templates from dir.
// An empty dir disables user templates.
func NewLoader(dir string) *Loader {
	var sources []source
	if dir != "" {
		sources = append(sources, source{name: SourceUser, fsys: os.DirFS(dir)})
	}
	return &Loader{sources: append(sources, builtinSource())}
}

// Load finds and loads a template by name.
// Resolution order: user directory, then built-in.
func (l *Loader) Load(name string) (*Template, error) {
	if !fs.ValidPath(name) || strings.ContainsAny(name, `/\`) || name == "." {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid template name %q", name), ErrNotFound)
	}

	for _, src := range l.sources {
		tmpl, err := readTemplate(src.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, output.NewUserErrorWithCause("failed to load template "+name, err)
		}
		tmpl.Source = src.name
		return tmpl, nil
	}

	return nil, output.NewUserErrorWithCause(
		fmt.Sprintf("template %q not found; run 'zetta templates' to list them", name), ErrNotFound)
}

// List returns all available templates grouped by source, user templates
// first. A template shadowed by an earlier source is not listed again; the
// earlier one reports it through Overrides.
func (l *Loader) List() []Info {
	var templates []Info
	index := make(map[string]int)

	for _, src := range l.sources {
		for _, info := range listTemplates(src.fsys, src.name) {
			if i, seen := index[info.Name]; seen {
				if templates[i].Overrides == "" {
					templates[i].Overrides = src.name
				}
				continue
			}
			index[info.Name] = len(templates)
			templates = append(templates, info)
		}
	}
	return templates
}

// Initial builds the content a new note starts with.
// The first line is title, else the template title, else DefaultTitle.
// Without a template body the content is exactly that line, with no
// trailing newline; a body follows after a blank line.
func Initial(title string, tmpl *Template) string {
	var body string
	if tmpl != nil {
		if title == "" {
			title = tmpl.Title
		}
		body = tmpl.Content
	}
	if title == "" {
		title = DefaultTitle
	}

	if body == "" {
		return title
	}
	return title + "\n\n" + body + "\n"
}

// readTemplate reads <name>.md from fsys.
func readTemplate(fsys fs.FS, name string) (*Template, error) {
	data, err := fs.ReadFile(fsys, name+".md")
	if err != nil {
		return nil, err
	}
	return parseTemplate(name, string(data))
}

// listTemplates describes every readable *.md template in fsys, sorted by
// name. Unreadable or malformed files are left out.
func listTemplates(fsys fs.FS, sourceName string) []Info {
	matches, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	templates := make([]Info, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSuffix(match, ".md")
		tmpl, err := readTemplate(fsys, name)
		if err != nil {
			continue
		}
		templates = append(templates, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      sourceName,
		})
	}
	return templates
}

// parseTemplate parses a template from raw content with YAML frontmatter.
// The file name wins when the frontmatter has no name.
func parseTemplate(name, raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
