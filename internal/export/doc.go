// Package export provides formatting and file output for notes.
//
// This package handles exporting the notes of a box to formats that other
// tools can consume: static site generators, search indexers, backups.
//
// # Supported Formats
//
//   - JSON: Machine-readable array of {id, title, content, ...}
//   - Markdown: The note content preceded by YAML frontmatter
//
// # JSON Export
//
//	export.FormatJSON(printer, docs)              // Write to printer
//	export.WriteJSONFiles(docs, "/path/to/dir")   // Write individual files
//
// # Markdown Export
//
//	markdown, err := export.FormatMarkdown(doc)   // Get markdown string
//	export.WriteMarkdownFiles(docs, "/path/to")   // Write individual files
//
// Example markdown output:
//
//	---
//	schema: zetta.export/v1
//	id: "20260115150405"
//	title: Groceries
//	commit_count: 3
//	updated: 2026-01-15
//	---
//
//	# Groceries
//	- milk
//
// # File Naming
//
// When writing to files, notes are named by their identifier:
//   - JSON: <id>.json
//   - Markdown: <id>.md
package export
