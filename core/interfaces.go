// Package core defines the shared types and pipeline interfaces for easyread.
// Each stage of the article pipeline is a small, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Article is the readable part of a fetched page.
type Article struct {
	URL      string
	Title    string
	Byline   string
	SiteName string
	Language string
	HTML     string // inner HTML of the content container
}

// PageMetadata holds metadata about a rendered article.
type PageMetadata struct {
	URL       string     `json:"url"`
	Domain    string     `json:"domain"`
	Path      string     `json:"path"`
	Title     string     `json:"title"`
	SiteName  string     `json:"site_name,omitempty"`
	Byline    string     `json:"byline,omitempty"`
	Language  string     `json:"language"`
	Level     Difficulty `json:"level"`
	FetchedAt string     `json:"fetched_at"` // ISO8601
}

// Page is what renderers consume: the rewritten fragment, its Markdown
// form and the metadata describing where it came from.
type Page struct {
	Meta     PageMetadata
	HTML     string
	Markdown string
}

// Fetcher retrieves raw HTML (or any text body) from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the readable article out of a full HTML page.
type Extractor interface {
	Extract(pageURL string, html string) (*Article, error)
}

// Sanitizer strips unsafe markup from an HTML fragment.
type Sanitizer interface {
	Sanitize(html string) string
}

// Rewriter rewrites plain text and HTML fragments at a difficulty level.
type Rewriter interface {
	RewriteText(text string, level Difficulty) (string, error)
	RewriteHTML(fragment string, level Difficulty) (string, error)
}

// Normalizer converts cleaned HTML into Markdown (the canonical text format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a rewritten page into a final output format.
type Renderer interface {
	Render(page Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
