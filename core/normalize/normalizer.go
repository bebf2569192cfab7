// Package normalize implements the Normalizer interface.
// It converts rewritten article HTML into Markdown, the text form used by
// the Markdown, JSON and PDF renderers.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	// Domain resolves any relative links left in the fragment.
	Domain string
}

// New creates a MarkdownNormalizer. domain may be empty.
func New(domain string) *MarkdownNormalizer {
	return &MarkdownNormalizer{Domain: domain}
}

// Normalize converts an HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	var opts []converter.ConvertOptionFunc
	if n.Domain != "" {
		opts = append(opts, converter.WithDomain(n.Domain))
	}
	markdown, err := htmltomarkdown.ConvertString(html, opts...)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
