package msword

import (
	"strings"

	"github.com/docfoundry/wordstore/pkg/docx"
)

// DefaultParagraphSep separates paragraph texts in extracted document text.
const DefaultParagraphSep = "\n"

// ParagraphTexts returns the text of every paragraph of doc in document
// order. Empty paragraphs contribute empty strings.
func ParagraphTexts(doc *docx.Document) []string {
	texts := make([]string, len(doc.Paragraphs))
	for i, p := range doc.Paragraphs {
		texts[i] = p.Text()
	}
	return texts
}

// DocumentText flattens doc into a single string: the text of every
// paragraph in order, joined with sep. A document with no paragraphs
// yields ""; empty paragraphs produce consecutive separators, preserving
// blank lines.
func DocumentText(doc *docx.Document, sep string) string {
	return strings.Join(ParagraphTexts(doc), sep)
}

// BytesToDocument decodes a raw word-processing package into a Document.
// Malformed bytes yield a *docx.DecodeError, untranslated.
func BytesToDocument(b []byte) (*docx.Document, error) {
	return docx.Parse(b)
}

// BytesToText returns a decoder that extracts plain text from a raw
// word-processing package, joining paragraphs with sep. It is the
// composition of BytesToDocument and DocumentText; decode failures
// propagate unchanged.
func BytesToText(sep string) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		doc, err := BytesToDocument(b)
		if err != nil {
			return "", err
		}
		return DocumentText(doc, sep), nil
	}
}
