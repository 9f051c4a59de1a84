package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/designfolio/internal/view"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are the helpers every template can call.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon":        view.IconSVG,
		"iconOptions": view.IconOptions,
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"join": strings.Join,
		"deref": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}
