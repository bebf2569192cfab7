// Package render — HTML renderer.
// Wraps the rewritten fragment in a minimal standalone document.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/easyread/core"
)

// HTMLRenderer writes a standalone HTML page.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the fragment inside an <article> element.
func (r *HTMLRenderer) Render(page core.Page) ([]byte, error) {
	lang := page.Meta.Language
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", html.EscapeString(lang))
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(page.Meta.Title))
	fmt.Fprintf(&b, "<meta name=\"easyread-level\" content=\"%s\">\n</head>\n<body>\n", page.Meta.Level)
	fmt.Fprintf(&b, "<article class=\"reader-content\">\n%s\n</article>\n", page.HTML)
	fmt.Fprintf(&b, "<p class=\"source\"><a href=\"%s\">%s</a></p>\n</body>\n</html>\n",
		html.EscapeString(page.Meta.URL), html.EscapeString(page.Meta.URL))
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
