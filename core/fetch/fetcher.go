// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with headers that picky news sites accept.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/easyread/core"
)

const (
	defaultTimeout = 30 * time.Second
	// Some publishers refuse non-browser agents.
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"
	maxBodyBytes     = 10 << 20

	// AcceptHTML is the Accept header for article pages.
	AcceptHTML = "text/html,application/xhtml+xml"
	// AcceptFeed is the Accept header for RSS and Atom documents.
	AcceptFeed = "application/rss+xml,application/atom+xml,application/xml,text/xml"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
	accept string
}

// New creates an HTTPFetcher for article pages.
func New() *HTTPFetcher {
	return NewWithClient(&http.Client{Timeout: defaultTimeout}, AcceptHTML)
}

// NewWithClient creates an HTTPFetcher using client and the given Accept header.
func NewWithClient(client *http.Client, accept string) *HTTPFetcher {
	return &HTTPFetcher{client: client, accept: accept}
}

// Fetch retrieves the body of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", f.accept)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
