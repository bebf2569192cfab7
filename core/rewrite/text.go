// Package rewrite rewrites article text for language learners.
//
// Text handles plain prose: it splits sentences lexically, drops
// parentheticals, swaps formal words from a fixed lexicon and, at the
// simple level, breaks clauses into short lines grouped four to a
// paragraph. HTML applies the same transform to the text of block-level
// elements in a fragment while leaving every tag and attribute in place.
//
// Both are pure functions of their input and safe for concurrent use.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/easyread/core"
	"github.com/gaurav-prasanna/easyread/core/chunk"
)

// space is the whitespace class used for collapsing and splitting.
const space = `[\s\x0b\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// linesPerParagraph is how many simple-level lines share a paragraph.
const linesPerParagraph = 4

var (
	paragraphBreak = regexp.MustCompile(`\n{2,}`)
	spaceRun       = regexp.MustCompile(space + `+`)
	sentenceEnd    = regexp.MustCompile(`[.!?]` + space + `+`)
	parenthetical  = regexp.MustCompile(`\([^)]*\)`)
	clauseBreak    = regexp.MustCompile(`[;:—–]`)
	commaBreak     = regexp.MustCompile(`,` + space)
	terminalPunct  = regexp.MustCompile(`[.!?]$`)
	paragraphMark  = regexp.MustCompile(space + `+\n` + space + `+`)
)

var lineChunker = chunk.New(chunk.DefaultSize)

func isSpace(r rune) bool {
	return r == '\ufeff' || (r != '\u0085' && unicode.IsSpace(r))
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// collapse turns every whitespace run into one space and trims the ends.
func collapse(s string) string {
	return trim(spaceRun.ReplaceAllString(s, " "))
}

// Paragraphs splits text on blank lines, trimming each paragraph and
// dropping empty ones.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if p = trim(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeParagraphs(text string) string {
	return strings.Join(Paragraphs(text), "\n\n")
}

// Sentences splits text after every '.', '!' or '?' that is followed by
// whitespace. Abbreviations and decimals are not special-cased.
func Sentences(text string) []string {
	flat := spaceRun.ReplaceAllString(text, " ")

	var out []string
	start := 0
	for _, m := range sentenceEnd.FindAllStringIndex(flat, -1) {
		if s := trim(flat[start : m[0]+1]); s != "" {
			out = append(out, s)
		}
		start = m[1]
	}
	if s := trim(flat[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// Text rewrites prose for the given level. Blank input yields "".
func Text(text string, level core.Difficulty) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("rewrite text: %w: %q", core.ErrInvalidDifficulty, level)
	}

	clean := normalizeParagraphs(text)
	if clean == "" {
		return "", nil
	}

	switch level {
	case core.Intermediate:
		return intermediate(Sentences(clean)), nil
	case core.Simple:
		return simple(Sentences(clean)), nil
	default:
		return clean, nil
	}
}

func plainSentence(s string) string {
	return collapse(parenthetical.ReplaceAllString(s, ""))
}

func intermediate(sentences []string) string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, applyRules(plainSentence(s), lexicon[:intermediateRules]))
	}
	return normalizeParagraphs(strings.Join(out, " "))
}

func simple(sentences []string) string {
	var lines []string
	for _, s := range sentences {
		lines = append(lines, shortLines(s)...)
	}

	parts := make([]string, 0, len(lines)+len(lines)/linesPerParagraph)
	for i, line := range lines {
		if !terminalPunct.MatchString(line) {
			line += "."
		}
		parts = append(parts, line)
		if (i+1)%linesPerParagraph == 0 {
			parts = append(parts, "\n")
		}
	}
	joined := paragraphMark.ReplaceAllString(strings.Join(parts, " "), "\n\n")
	return normalizeParagraphs(joined)
}

// shortLines simplifies one sentence and breaks it into clause lines of at
// most chunk.DefaultSize words.
func shortLines(sentence string) []string {
	t := applyRules(plainSentence(sentence), lexicon)

	var out []string
	for _, clause := range clauseBreak.Split(t, -1) {
		for _, part := range splitCommas(clause) {
			if part = trim(part); part != "" {
				out = append(out, lineChunker.Chunk(part)...)
			}
		}
	}
	return out
}

// splitCommas cuts s at each comma that is followed by whitespace; the comma
// itself is dropped.
func splitCommas(s string) []string {
	var out []string
	start := 0
	for _, m := range commaBreak.FindAllStringIndex(s, -1) {
		out = append(out, s[start:m[0]])
		start = m[0] + 1
	}
	return append(out, s[start:])
}
