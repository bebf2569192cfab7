// Package sanitize removes unsafe markup from extracted article HTML
// before it is rewritten or served.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Policy wraps a bluemonday policy for user-generated content that also
// keeps the target and rel attributes set on article links.
type Policy struct {
	p *bluemonday.Policy
}

// New creates the article sanitization policy.
func New() *Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("target").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AllowAttrs("rel").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AllowAttrs("class").Globally()
	return &Policy{p: p}
}

// Sanitize returns html with scripts, event handlers and unsafe URLs removed.
func (s *Policy) Sanitize(html string) string {
	return s.p.Sanitize(html)
}
