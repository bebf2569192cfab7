// Package feed — RSS and Atom parsing.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// entry is a parsed item before it is tied to a source.
type entry struct {
	Title     string
	URL       string
	Published time.Time
	Excerpt   string
}

// parse decodes an RSS or Atom body. Items without a link or title are
// dropped; undated items get the zero time.
func parse(body string) ([]entry, error) {
	// Parsers keep per-document state, so each call gets its own.
	f, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	out := make([]entry, 0, len(f.Items))
	for _, it := range f.Items {
		title := strings.TrimSpace(it.Title)
		link := itemLink(it)
		if title == "" || link == "" {
			continue
		}
		out = append(out, entry{
			Title:     title,
			URL:       link,
			Published: published(it),
			Excerpt:   cleanText(firstNonEmpty(it.Description, it.Content)),
		})
	}
	return out, nil
}

func itemLink(it *gofeed.Item) string {
	if link := strings.TrimSpace(it.Link); link != "" {
		return link
	}
	for _, l := range it.Links {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}

func published(it *gofeed.Item) time.Time {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.UTC()
	}
	return time.Time{}
}

// cleanText strips markup and collapses whitespace.
func cleanText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
