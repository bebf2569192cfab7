// Package extract implements the Extractor interface.
// It isolates the readable article in a full HTML page by:
//  1. Making links and images absolute so the fragment works out of context
//  2. Scoring the page with readability and keeping its article content
//  3. Falling back to the first content container (<main>, <article>, or
//     <body>) when readability finds too little text
//
// Noise elements (navigation, scripts, forms, ads) are removed either way.
//
// Images, figures and captions are kept; they belong to the reading view.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	readability "github.com/go-shiori/go-readability"

	"github.com/gaurav-prasanna/easyread/core"
)

// noise matches elements removed before extraction.
var noise = cascadia.MustCompile(strings.Join([]string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"iframe", "form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}, ", "))

// containers are tried in order; the first match holds the article.
var containers = []string{"main", "article", "body"}

// minReadableChars is the article text length below which the readability
// result is discarded in favour of the container fallback.
const minReadableChars = 500

// HTMLExtractor pulls the article fragment and its metadata out of a page.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses page and returns the article found in it. pageURL is used
// to resolve relative links and as the title of last resort.
func (e *HTMLExtractor) Extract(pageURL string, page string) (*core.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	absolute := err == nil && base.IsAbs()
	if absolute {
		absolutize(doc, base)
	}

	article := &core.Article{
		URL:      pageURL,
		Title:    title(doc, pageURL),
		SiteName: attr(doc, `meta[property="og:site_name"]`, "content"),
		Byline:   attr(doc, `meta[name="author"]`, "content"),
		Language: attr(doc, "html[lang]", "lang"),
	}
	if article.Language == "" {
		article.Language = "en"
	}

	if absolute {
		if content, byline, ok := readable(doc, base); ok {
			article.HTML = content
			if article.Byline == "" {
				article.Byline = byline
			}
			return article, nil
		}
	}

	doc.FindMatcher(noise).Remove()

	var content *goquery.Selection
	for _, tag := range containers {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	inner, err := content.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}
	article.HTML = strings.TrimSpace(inner)
	return article, nil
}

// readable runs readability over the page and returns the article content
// with noise removed, and the byline readability found.
func readable(doc *goquery.Document, base *url.URL) (string, string, bool) {
	page, err := doc.Html()
	if err != nil {
		return "", "", false
	}
	found, err := readability.FromReader(strings.NewReader(page), base)
	if err != nil || found.Length < minReadableChars {
		return "", "", false
	}

	content, err := goquery.NewDocumentFromReader(strings.NewReader(found.Content))
	if err != nil {
		return "", "", false
	}
	content.FindMatcher(noise).Remove()
	inner, err := content.Find("body").Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return "", "", false
	}
	return strings.TrimSpace(inner), strings.TrimSpace(found.Byline), true
}

// absolutize resolves href and src attributes against base. Links open in a
// new tab without a referrer.
func absolutize(doc *goquery.Document, base *url.URL) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved, ok := resolve(base, href); ok {
			s.SetAttr("href", resolved)
			s.SetAttr("target", "_blank")
			s.SetAttr("rel", "noreferrer")
		}
	})
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if resolved, ok := resolve(base, src); ok {
			s.SetAttr("src", resolved)
		}
	})
}

func resolve(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(parsed).String(), true
}

func title(doc *goquery.Document, fallback string) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := attr(doc, `meta[property="og:title"]`, "content"); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return fallback
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}
