// Package export provides formatting and output for notes.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/zetta/internal/output"
)

// Schema identifies the export format version.
const Schema = "zetta.export/v1"

// Document is one exported note.
// Commits and Updated come from the note's history and are zero for
// notes that were never committed.
type Document struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Commits int       `json:"commit_count"`
	Updated time.Time `json:"updated,omitzero"`
}

// FormatJSON outputs the documents as a JSON array to the printer.
// A nil slice is written as an empty array.
func FormatJSON(printer *output.Printer, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	return printer.WriteJSON(docs)
}

// WriteJSONFiles writes each document as a separate JSON file to the output directory.
// Files are named <id>.json.
func WriteJSONFiles(docs []Document, dir string) error {
	for _, doc := range docs {
		filename := filepath.Join(dir, doc.ID+".json")

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return output.NewSystemError(fmt.Sprintf("failed to marshal note %s: %v", doc.ID, err))
		}

		if err := os.WriteFile(filename, append(data, '\n'), 0o600); err != nil {
			return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", filename, err))
		}
	}

	return nil
}
