package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.md
var embedded embed.FS

// builtinSource serves the templates compiled into the binary.
func builtinSource() source {
	fsys, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic("template: embedded templates directory missing: " + err.Error())
	}
	return source{name: SourceBuiltin, fsys: fsys}
}
