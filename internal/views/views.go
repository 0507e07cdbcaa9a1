// Package views holds the HTML templates, compiled into the binary.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var files embed.FS

// MainLayout wraps every rendered page.
const MainLayout = "layouts/main"

// NewEngine builds the template engine over the embedded template files.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("nl2br", nl2br)
	return engine
}

// nl2br renders newline-delimited text fields (bio, demo links) as HTML
// line breaks, escaping everything else.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
