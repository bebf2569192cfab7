// Package feed — aggregation across sources.
package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/easyread/core"
)

// DefaultLimit caps the number of items returned by Latest.
const DefaultLimit = 40

// Item is one article in the aggregated list.
type Item struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	SourceID   string    `json:"source_id"`
	SourceName string    `json:"source_name"`
	Category   Category  `json:"category"`
	Published  time.Time `json:"published_at,omitzero"`
	Excerpt    string    `json:"excerpt,omitempty"`
}

// Options narrows what Latest returns.
type Options struct {
	Category Category
	Limit    int // <= 0 means DefaultLimit
}

// Aggregator polls feeds through a Fetcher.
type Aggregator struct {
	fetcher core.Fetcher
	log     *zap.Logger
}

// NewAggregator creates an Aggregator. A nil logger disables logging.
func NewAggregator(fetcher core.Fetcher, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{fetcher: fetcher, log: log.Named("feed")}
}

// Latest fetches every matching source concurrently and returns their items
// newest first, deduplicated by URL. Feeds that fail to load are skipped.
func (a *Aggregator) Latest(ctx context.Context, sources []Source, opts Options) []Item {
	sources = Filter(sources, opts.Category)
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	perSource := make([][]Item, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := a.load(ctx, src)
			if err != nil {
				a.log.Warn("skipping feed", zap.String("source", src.ID), zap.Error(err))
				return
			}
			perSource[i] = items
		}()
	}
	wg.Wait()

	var all []Item
	for _, items := range perSource {
		all = append(all, items...)
	}
	// Undated items sort last.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Published.After(all[j].Published)
	})

	seen := make(map[string]bool)
	out := make([]Item, 0, min(limit, len(all)))
	for _, it := range all {
		key := NormalizeURL(it.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (a *Aggregator) load(ctx context.Context, src Source) ([]Item, error) {
	res, err := a.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	entries, err := parse(res.HTML)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if !IsArticleURL(e.URL) {
			continue
		}
		items = append(items, Item{
			ID:         EncodeID(e.URL),
			URL:        e.URL,
			Title:      e.Title,
			SourceID:   src.ID,
			SourceName: src.Name,
			Category:   src.Category,
			Published:  e.Published,
			Excerpt:    e.Excerpt,
		})
	}
	a.log.Debug("loaded feed", zap.String("source", src.ID), zap.Int("items", len(items)))
	return items, nil
}
