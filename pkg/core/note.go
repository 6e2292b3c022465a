package core

import "strings"

// Note is a markdown document keyed by its calendar date.
// Date doubles as the filename stem on disk (YYYY-MM-DD).
type Note struct {
	Date    string `json:"dateString"`
	Content string `json:"content"`
}

// Title returns the derived title of the note.
func (n Note) Title() string {
	return Title(n.Content)
}

// Title derives a title from markdown content: the first non-blank line with
// any leading heading markers stripped. Returns "" when every line is blank.
func Title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}
