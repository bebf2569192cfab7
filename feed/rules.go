// Package feed — URL helpers.
// Normalizes item links for deduplication and maps them to URL-safe IDs.
package feed

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}

// IsArticleURL reports whether rawURL is an absolute http(s) URL.
func IsArticleURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// EncodeID turns an article URL into an unpadded URL-safe base64 ID.
func EncodeID(rawURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(rawURL))
}

// DecodeID reverses EncodeID.
func DecodeID(id string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(id, "="))
	if err != nil {
		return "", fmt.Errorf("decoding article id: %w", err)
	}
	return string(b), nil
}
