// Package web holds the widget page, its stylesheet and script.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageData is what the page template renders.
type PageData struct {
	Query   string
	Result  *models.ResultView
	Message string
}

// Templates returns the parsed page templates.
func Templates() *template.Template {
	return templates
}

// Static returns the stylesheet and script, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderIndex writes the page for data to w.
func RenderIndex(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, IndexTemplate, data)
}

// Stylesheet returns the raw stylesheet.
func Stylesheet() ([]byte, error) {
	return fs.ReadFile(staticFS, "static/style.css")
}
