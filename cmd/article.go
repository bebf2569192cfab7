// Package cmd — article command.
// Runs the reading pipeline for one article:
// fetch → extract → sanitize → rewrite → normalize → render → write.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/easyread/core"
	"github.com/gaurav-prasanna/easyread/core/extract"
	"github.com/gaurav-prasanna/easyread/core/fetch"
	"github.com/gaurav-prasanna/easyread/core/logging"
	"github.com/gaurav-prasanna/easyread/core/normalize"
	"github.com/gaurav-prasanna/easyread/core/output"
	"github.com/gaurav-prasanna/easyread/core/render"
	"github.com/gaurav-prasanna/easyread/core/rewrite"
	"github.com/gaurav-prasanna/easyread/core/sanitize"
	"github.com/gaurav-prasanna/easyread/feed"
)

var (
	flagArticleLevel string
	flagPDF          bool
	flagMarkdown     bool
	flagJSON         bool
	flagHTMLOut      bool
	flagTree         bool
	flagOutputDir    string
)

var articleCmd = &cobra.Command{
	Use:   "article <url|id>",
	Short: "Rewrite an article and write it in the chosen format",
	Long: `Article fetches a page, extracts its main content, rewrites the prose at
the chosen level and writes it as Markdown, JSON, PDF or standalone HTML.
The argument is either a URL or an item id printed by the feed command.

Examples:
  easyread article https://example.com/post --level simple --markdown
  easyread article https://example.com/post --json --output_dir ./out
  easyread article aHR0cHM6Ly9leGFtcGxlLmNvbS9wb3N0 --level intermediate --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runArticle,
}

func init() {
	rootCmd.AddCommand(articleCmd)

	articleCmd.Flags().StringVar(&flagArticleLevel, "level", "original", "Reading level: original, intermediate or simple")

	// Output format flags (mutually exclusive).
	articleCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	articleCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	articleCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	articleCmd.Flags().BoolVar(&flagHTMLOut, "html", false, "Output a standalone HTML page")

	articleCmd.Flags().BoolVar(&flagTree, "tree", false, "Write under a per-host directory tree")
	articleCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runArticle(cmd *cobra.Command, args []string) error {
	rawURL, err := articleURL(args[0])
	if err != nil {
		return err
	}
	level, err := levelFlag(flagArticleLevel)
	if err != nil {
		return err
	}
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p := &pipeline{
		fetcher:   fetch.New(),
		extractor: extract.New(),
		sanitizer: sanitize.New(),
		rewriter:  rewrite.New(logging.L()),
		renderer:  renderer,
		log:       logging.L(),
	}
	data, err := p.run(cmd.Context(), rawURL, level)
	if err != nil {
		return err
	}

	write := writer.Write
	if flagTree {
		write = writer.WriteTree
	}
	path, err := write(rawURL, level, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// articleURL accepts an absolute http(s) URL or a feed item id.
func articleURL(arg string) (string, error) {
	if feed.IsArticleURL(arg) {
		return arg, nil
	}
	decoded, err := feed.DecodeID(arg)
	if err == nil && feed.IsArticleURL(decoded) {
		return decoded, nil
	}
	return "", fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", arg)
}

// pipeline holds the stages for one article run.
type pipeline struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	sanitizer core.Sanitizer
	rewriter  core.Rewriter
	renderer  core.Renderer
	log       *zap.Logger
}

func (p *pipeline) run(ctx context.Context, rawURL string, level core.Difficulty) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract main content
	article, err := p.extractor.Extract(rawURL, result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Sanitize, then rewrite the prose in place
	clean := p.sanitizer.Sanitize(article.HTML)
	rewritten, err := p.rewriter.RewriteHTML(clean, level)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}

	// 4. Normalize to Markdown
	parsed, _ := url.Parse(rawURL)
	markdown, err := normalize.New(parsed.Host).Normalize(rewritten)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	// 5. Render to output format
	page := core.Page{
		Meta: core.PageMetadata{
			URL:       rawURL,
			Domain:    parsed.Host,
			Path:      parsed.Path,
			Title:     article.Title,
			SiteName:  article.SiteName,
			Byline:    article.Byline,
			Language:  article.Language,
			Level:     level,
			FetchedAt: time.Now().UTC().Format(time.RFC3339),
		},
		HTML:     rewritten,
		Markdown: markdown,
	}
	data, err := p.renderer.Render(page)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	p.log.Info("article ready",
		zap.String("url", rawURL),
		zap.Stringer("level", level),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)
	return data, nil
}

// selectRenderer creates the Renderer chosen by the format flags.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON, flagHTMLOut} {
		if set {
			count++
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("exactly one output format is required: --pdf, --markdown, --json or --html")
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewHTMLRenderer(), nil
	}
}
