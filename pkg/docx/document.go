// Package docx decodes Office Open XML word-processing packages (.docx)
// into a minimal read-only document tree: ordered paragraphs, each holding
// an ordered sequence of text runs plus the paragraph style identifier.
//
// The package intentionally exposes only what downstream text extraction
// needs, not the full WordprocessingML surface.
package docx

import "strings"

// Run is a single run of text within a paragraph.
type Run struct {
	Text string
}

// Paragraph is one body-level paragraph of a document.
type Paragraph struct {
	// StyleID is the paragraph style identifier (e.g. "Heading1", "Normal").
	// Empty when the paragraph carries no explicit style.
	StyleID string

	// Runs are the paragraph's text runs in document order. A paragraph
	// with no runs has empty text.
	Runs []Run
}

// Text returns the concatenation of the paragraph's run texts.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Document is the decoded form of a word-processing package. It is
// produced freshly on every Parse and never mutated afterwards.
type Document struct {
	// Paragraphs are the document's body-level paragraphs in order.
	// Paragraphs inside tables are not included.
	Paragraphs []Paragraph
}

// StyleIDs returns the style identifier of every paragraph in order.
func (d *Document) StyleIDs() []string {
	ids := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		ids[i] = p.StyleID
	}
	return ids
}
