// Package render — JSON renderer.
// Emits the rewritten article with its metadata, headings and reading
// statistics so clients can compare levels side by side.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/easyread/core"
)

// ArticleJSON is the JSON document produced for one article.
type ArticleJSON struct {
	Metadata core.PageMetadata `json:"metadata"`
	Content  ArticleContent    `json:"content"`
	Headings []Heading         `json:"headings"`
	Stats    Stats             `json:"stats"`
}

// ArticleContent carries the article in each of its text forms.
type ArticleContent struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render builds the ArticleJSON for page.
func (r *JSONRenderer) Render(page core.Page) ([]byte, error) {
	text := PlainText(page.HTML)
	doc := ArticleJSON{
		Metadata: page.Meta,
		Content: ArticleContent{
			Text:     text,
			Markdown: page.Markdown,
			HTML:     page.HTML,
		},
		Headings: Headings(page.HTML),
		Stats:    Measure(text),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
