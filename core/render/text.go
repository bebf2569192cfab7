// Package render — plain text and reading statistics.
// Shared by the JSON renderer; the counts use the same lexical sentence
// splitter as the rewriter so they line up with what a reader sees.
package render

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/easyread/core/chunk"
	"github.com/gaurav-prasanna/easyread/core/rewrite"
)

var (
	textBlocks = cascadia.MustCompile("p, li, blockquote, figcaption, pre, h1, h2, h3, h4, h5, h6")
	headingTag = cascadia.MustCompile("h1, h2, h3, h4, h5, h6")
)

// Stats describes how long and how dense a text is.
type Stats struct {
	Paragraphs       int     `json:"paragraphs"`
	Sentences        int     `json:"sentences"`
	Words            int     `json:"words"`
	WordsPerSentence float64 `json:"words_per_sentence"`
}

// Heading is a heading found in the article.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PlainText returns the text of the outermost block elements in fragment,
// one per paragraph. Fragments without blocks yield their full text.
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var paras []string
	doc.FindMatcher(textBlocks).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsMatcher(textBlocks).Length() > 0 {
			return
		}
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			paras = append(paras, t)
		}
	})
	if len(paras) == 0 {
		return strings.Join(strings.Fields(doc.Text()), " ")
	}
	return strings.Join(paras, "\n\n")
}

// Headings lists the h1-h6 elements in fragment in document order.
func Headings(fragment string) []Heading {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	headings := []Heading{}
	doc.FindMatcher(headingTag).Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, Heading{Level: level, Text: text})
	})
	return headings
}

// Measure counts paragraphs, sentences and words in text.
func Measure(text string) Stats {
	var st Stats
	for _, p := range rewrite.Paragraphs(text) {
		st.Paragraphs++
		st.Sentences += len(rewrite.Sentences(p))
		st.Words += chunk.Words(p)
	}
	if st.Sentences > 0 {
		st.WordsPerSentence = math.Round(float64(st.Words)/float64(st.Sentences)*10) / 10
	}
	return st
}
