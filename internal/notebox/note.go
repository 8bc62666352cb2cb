package notebox

import "strings"

// Note is one entry in the box: a directory named by its identifier holding
// a single content file. The title is derived from the first line.
type Note struct {
	ID          string   `json:"id"`
	Dir         string   `json:"-"`
	ContentPath string   `json:"-"`
	Title       string   `json:"title"`
	Lines       []string `json:"lines"`
}

// Content joins the note's lines back into file form.
func (n *Note) Content() string {
	if len(n.Lines) == 0 {
		return ""
	}
	return strings.Join(n.Lines, "\n") + "\n"
}

// Summary is the "<id>: <title>" view used by list and search.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DeriveTitle turns a note's first line into its display title: surrounding
// whitespace is trimmed and at most one leading '#' is removed.
func DeriveTitle(line string) string {
	title := strings.TrimSpace(line)
	title = strings.TrimPrefix(title, "#")
	return strings.TrimSpace(title)
}

// FirstLine returns the first line of content without its line terminator
// or trailing whitespace. Empty content yields "".
func FirstLine(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimRight(line, " \t\r")
}

// SplitLines splits file content into lines, dropping the terminator of the
// final line and any carriage returns.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CommitMessage is the message recorded after creating or editing a note.
func CommitMessage(id, titleLine string) string {
	return id + ": " + titleLine
}

// DeletionMessage is the message recorded after deleting a note.
func DeletionMessage(id string) string {
	return "deleted " + id
}
