package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/zetta/internal/output"
)

// frontmatter is the YAML header written above each exported note.
type frontmatter struct {
	Schema      string `yaml:"schema"`
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	CommitCount int    `yaml:"commit_count"`
	Updated     string `yaml:"updated,omitempty"`
}

// FormatMarkdown formats a single note as a markdown document: YAML
// frontmatter followed by the note content, ending in a newline.
func FormatMarkdown(doc Document) (string, error) {
	var builder strings.Builder

	if err := writeFrontmatter(&builder, doc); err != nil {
		return "", err
	}

	content := doc.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	builder.WriteString(content)

	return builder.String(), nil
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, doc Document) error {
	meta := frontmatter{
		Schema:      Schema,
		ID:          doc.ID,
		Title:       doc.Title,
		CommitCount: doc.Commits,
	}
	if !doc.Updated.IsZero() {
		meta.Updated = doc.Updated.Format("2006-01-02")
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to encode frontmatter for %s: %v", doc.ID, err))
	}

	builder.WriteString("---\n")
	builder.Write(data)
	builder.WriteString("---\n\n")
	return nil
}

// WriteMarkdown writes every document to printer, separated by blank lines.
func WriteMarkdown(printer *output.Printer, docs []Document) error {
	for i, doc := range docs {
		md, err := FormatMarkdown(doc)
		if err != nil {
			return err
		}
		if i > 0 {
			printer.Println()
		}
		printer.Print("%s", md)
	}
	return nil
}

// WriteMarkdownFiles writes each document as a separate markdown file to the output directory.
// Files are named <id>.md.
func WriteMarkdownFiles(docs []Document, dir string) error {
	for _, doc := range docs {
		filename := filepath.Join(dir, doc.ID+".md")

		content, err := FormatMarkdown(doc)
		if err != nil {
			return err
		}

		if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
			return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", filename, err))
		}
	}

	return nil
}
