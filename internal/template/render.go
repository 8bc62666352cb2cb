package template

import (
	"strings"
	"time"
)

// Vars are the values substituted into a new note's content.
type Vars struct {
	ID  string
	Now time.Time
}

// Render replaces {{id}}, {{date}} and {{time}} in content.
// Unknown placeholders are left as written.
func Render(content string, vars Vars) string {
	if !strings.Contains(content, "{{") {
		return content
	}

	replacements := map[string]string{
		"id":   vars.ID,
		"date": vars.Now.Format(time.DateOnly),
		"time": vars.Now.Format("15:04"),
	}
	for key, val := range replacements {
		content = strings.ReplaceAll(content, "{{"+key+"}}", val)
	}
	return content
}
