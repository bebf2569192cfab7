// Package output handles file naming and writing for rendered articles.
// Flat names are derived from the URL (example_com_news_post.simple.md);
// tree names mirror host and path (example_com/news/post.simple.md).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/easyread/core"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under a flat name derived from rawURL and level.
func (w *Writer) Write(rawURL string, level core.Difficulty, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FlatName(rawURL)+"."+level.String()+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteTree stores data under host/path, creating directories as needed.
// Example: https://site.com/news/rates → site_com/news/rates.simple.md
func (w *Writer) WriteTree(rawURL string, level core.Difficulty, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.Trim(parsed.Path, "/")
	if urlPath == "" {
		urlPath = "index"
	}
	segments := []string{sanitize(parsed.Host)}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		segments = append(segments, sanitize(seg))
	}
	fullPath := filepath.Join(w.OutputDir, filepath.Join(segments...)+"."+level.String()+ext)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// FlatName converts a URL into a single file name without extension.
// Example: https://example.com/docs/intro → example_com_docs_intro
func FlatName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	if path := strings.Trim(parsed.Path, "/"); path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces anything but ASCII letters, digits and '-' with '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
