// Package feed reads public RSS and Atom feeds into article list items.
// Feeds are fetched concurrently; a failing feed is skipped so the
// others still show.
package feed

// Category groups feed sources by topic.
type Category string

const (
	Tech    Category = "tech"
	Economy Category = "economy"
)

// Source is one feed to poll.
type Source struct {
	ID       string
	Name     string
	URL      string
	Category Category
}

// DefaultSources is a small list of reputable public feeds. Some publishers
// block full-text fetches; callers fall back to the excerpt.
var DefaultSources = []Source{
	{ID: "arstechnica", Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: Tech},
	{ID: "techcrunch", Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: Tech},
	{ID: "mit-tech-review", Name: "MIT Technology Review", URL: "https://www.technologyreview.com/feed/", Category: Tech},
	{ID: "imf-blog", Name: "IMF Blog", URL: "https://www.imf.org/en/Blogs/RSS", Category: Economy},
	{ID: "world-bank-blog", Name: "World Bank Blogs", URL: "https://blogs.worldbank.org/rss.xml", Category: Economy},
}

// Filter returns the sources in category, or all of them if category is empty.
func Filter(sources []Source, category Category) []Source {
	if category == "" {
		return sources
	}
	var out []Source
	for _, s := range sources {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
