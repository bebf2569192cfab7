// Package render — PDF renderer.
// Lays out the rewritten article's Markdown with gofpdf: a title block,
// then headings, paragraphs, lists, quotes and code blocks. Images are not
// embedded.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/easyread/core"
)

var (
	orderedItem  = regexp.MustCompile(`^\d+\.\s`)
	mdEmphasis   = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	mdInlineCode = regexp.MustCompile("`([^`]+)`")
	mdLink       = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]+\)`)
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders an article as an A4 PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// pdfDoc pairs a document with its UTF-8 to cp1252 translator; the core
// fonts cannot show anything else.
type pdfDoc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func (d *pdfDoc) text(height float64, s string) {
	d.MultiCell(0, height, d.tr(s), "", "L", false)
}

// Render converts the page into PDF bytes.
func (r *PDFRenderer) Render(page core.Page) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	d := &pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.SetAutoPageBreak(true, 15)
	d.SetTitle(page.Meta.Title, true)
	d.AddPage()

	if page.Meta.Title != "" {
		d.SetFont("Helvetica", "B", 18)
		d.text(8, page.Meta.Title)
		d.Ln(3)
	}
	d.SetFont("Helvetica", "I", 9)
	d.SetTextColor(100, 100, 100)
	d.text(5, fmt.Sprintf("Source: %s  |  Level: %s", page.Meta.URL, page.Meta.Level))
	d.SetTextColor(0, 0, 0)
	d.Ln(6)

	inCode := false
	for _, line := range strings.Split(page.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			d.Ln(2)
			continue
		}
		if inCode {
			d.SetFont("Courier", "", 9)
			d.SetFillColor(245, 245, 245)
			d.MultiCell(0, 4.5, d.tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			d.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			d.heading(strings.TrimSpace(strings.TrimLeft(trimmed, "#")), level)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			d.SetFont("Helvetica", "", 11)
			d.text(5.5, "• "+plainInline(trimmed[2:]))
		case orderedItem.MatchString(trimmed):
			d.SetFont("Helvetica", "", 11)
			d.text(5.5, plainInline(trimmed))
		case strings.HasPrefix(trimmed, ">"):
			d.SetFont("Helvetica", "I", 11)
			d.text(5.5, plainInline(strings.TrimSpace(strings.TrimLeft(trimmed, "> "))))
		default:
			d.SetFont("Helvetica", "", 11)
			d.text(5.5, plainInline(trimmed))
		}
	}

	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (d *pdfDoc) heading(text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 11
	}
	d.Ln(4)
	d.SetFont("Helvetica", "B", size)
	d.text(size*0.6, plainInline(text))
	d.Ln(2)
}

// plainInline strips inline Markdown markers, keeping link text.
func plainInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = mdLink.ReplaceAllString(s, "$1")
	s = mdInlineCode.ReplaceAllString(s, "$1")
	s = mdEmphasis.ReplaceAllString(s, " $1 ")
	return strings.TrimSpace(s)
}
