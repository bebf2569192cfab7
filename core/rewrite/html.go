package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/easyread/core"
)

var (
	blockSelector   = cascadia.MustCompile("p, li, blockquote, figcaption")
	headingSelector = cascadia.MustCompile("h1, h2, h3")
)

// skipTags hold text that must never be rewritten.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"svg": true, "canvas": true,
	"code": true, "pre": true,
}

var newlines = regexp.MustCompile(`\n+`)

var errEmptyFragment = errors.New("fragment parsed to no nodes")

// block is a qualifying element and the text runs found under it.
type block struct {
	runs []*html.Node
}

// HTML rewrites the text of paragraphs, list items, block quotes, figure
// captions and h1-h3 headings in fragment. Tags, attributes and non-text
// nodes are left as they are. A fragment that cannot be parsed is returned
// unchanged.
func HTML(fragment string, level core.Difficulty) (string, error) {
	out, err := rewriteHTML(fragment, level)
	if errors.Is(err, core.ErrInvalidDifficulty) {
		return "", err
	}
	if err != nil {
		return fragment, nil
	}
	return out, nil
}

// rewriteHTML does the work for HTML; a non-nil error other than
// ErrInvalidDifficulty means the caller should fall back to the input.
func rewriteHTML(fragment string, level core.Difficulty) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("rewrite html: %w: %q", core.ErrInvalidDifficulty, level)
	}
	if level == core.Original {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	// Collect first, then mutate: the tree shape never changes while
	// blocks are being rewritten.
	doc := goquery.NewDocumentFromNode(root)
	var blocks []block
	doc.FindMatcher(blockSelector).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if skipTags[n.Data] {
			return
		}
		blocks = append(blocks, block{runs: textRuns(n)})
	})
	var headings []*html.Node
	doc.FindMatcher(headingSelector).Each(func(_ int, s *goquery.Selection) {
		if n := s.Get(0); !skipTags[n.Data] {
			headings = append(headings, n)
		}
	})

	for _, b := range blocks {
		if err := rewriteBlock(b, level); err != nil {
			return "", err
		}
	}
	for _, h := range headings {
		if err := rewriteHeading(h, level); err != nil {
			return "", err
		}
	}

	return renderChildren(root)
}

// parseFragment parses fragment as the children of a detached div.
func parseFragment(fragment string) (*html.Node, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), root)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	if len(nodes) == 0 {
		return nil, errEmptyFragment
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// textRuns returns the text nodes under n in document order, not descending
// into skip-listed elements.
func textRuns(n *html.Node) []*html.Node {
	var runs []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				runs = append(runs, c)
			case html.ElementNode:
				if !skipTags[c.Data] {
					walk(c)
				}
			}
		}
	}
	walk(n)
	return runs
}

func rewriteBlock(b block, level core.Difficulty) error {
	// Runs emptied by an enclosing block that was rewritten earlier drop out
	// here, so nested blocks are only rewritten once.
	var runs []*html.Node
	for _, r := range b.runs {
		if collapse(r.Data) != "" {
			runs = append(runs, r)
		}
	}
	if len(runs) == 0 {
		return nil
	}

	texts := make([]string, len(runs))
	for i, r := range runs {
		texts[i] = r.Data
	}
	rewritten, err := Text(collapse(strings.Join(texts, " ")), level)
	if err != nil {
		return err
	}

	var lead, trail string
	if r, _ := utf8.DecodeRuneInString(runs[0].Data); isSpace(r) {
		lead = " "
	}
	if r, _ := utf8.DecodeLastRuneInString(runs[len(runs)-1].Data); isSpace(r) {
		trail = " "
	}

	first := runs[0]
	first.Data = lead + collapse(rewritten) + trail
	for _, r := range runs[1:] {
		r.Data = ""
	}
	return nil
}

// rewriteHeading replaces the heading's children with a single text node.
func rewriteHeading(h *html.Node, level core.Difficulty) error {
	text := collapse(textContent(h))
	if text == "" {
		return nil
	}
	rewritten, err := Text(text, level)
	if err != nil {
		return err
	}

	for c := h.FirstChild; c != nil; c = h.FirstChild {
		h.RemoveChild(c)
	}
	h.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: collapse(newlines.ReplaceAllString(rewritten, " ")),
	})
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

func renderChildren(root *html.Node) (string, error) {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("rendering fragment: %w", err)
		}
	}
	return b.String(), nil
}
