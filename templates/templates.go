// Package templates holds the server-rendered views. Rendering is a thin
// collaborator around the services; nothing here carries domain logic.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

var tmpl = template.Must(template.ParseFS(files, "*.html"))

func Render(w io.Writer, name string, data interface{}) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
