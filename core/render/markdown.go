// Package render — Markdown renderer.
// Prefixes the normalized Markdown with the title and a source line.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/easyread/core"
)

// MarkdownRenderer writes the article as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the title, source line and body as Markdown.
func (r *MarkdownRenderer) Render(page core.Page) ([]byte, error) {
	var b strings.Builder
	if page.Meta.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", page.Meta.Title)
	}
	fmt.Fprintf(&b, "_Source: %s · level: %s_\n\n", page.Meta.URL, page.Meta.Level)
	b.WriteString(page.Markdown)
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
