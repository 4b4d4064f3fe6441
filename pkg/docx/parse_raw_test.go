package docx_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfoundry/wordstore/pkg/docx"
)

// zipWith builds a single-entry zip archive.
func zipWith(t *testing.T, name string, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(body)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// docWith wraps WordprocessingML body markup in a document part.
func docWith(t *testing.T, body string) []byte {
	t.Helper()
	xml := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
	return zipWith(t, "word/document.xml", []byte(xml))
}

func TestParseTabsAndBreaks(t *testing.T) {
	b := docWith(t,
		`<w:p><w:r><w:t>col1</w:t><w:tab/><w:t>col2</w:t><w:br/><w:t>line2</w:t></w:r></w:p>`)

	doc, err := docx.Parse(b)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "col1\tcol2\nline2", doc.Paragraphs[0].Text())
}

func TestParseSkipsTableParagraphs(t *testing.T) {
	b := docWith(t,
		`<w:p><w:r><w:t>before table</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell text</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:p><w:r><w:t>after table</w:t></w:r></w:p>`)

	doc, err := docx.Parse(b)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "before table", doc.Paragraphs[0].Text())
	assert.Equal(t, "after table", doc.Paragraphs[1].Text())
}

func TestParseIgnoresNonRunText(t *testing.T) {
	// Character data outside w:t (whitespace between elements, property
	// values) must not leak into paragraph text.
	b := docWith(t,
		`<w:p>
			<w:pPr><w:pStyle w:val="Normal"/></w:pPr>
			<w:r><w:t>only this</w:t></w:r>
		</w:p>`)

	doc, err := docx.Parse(b)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "only this", doc.Paragraphs[0].Text())
	assert.Equal(t, "Normal", doc.Paragraphs[0].StyleID)
}

func TestParseEmptyParagraphBetweenRuns(t *testing.T) {
	b := docWith(t,
		`<w:p><w:r><w:t>first</w:t></w:r></w:p>`+
			`<w:p/>`+
			`<w:p><w:r><w:t>last</w:t></w:r></w:p>`)

	doc, err := docx.Parse(b)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 3)
	assert.Equal(t, "", doc.Paragraphs[1].Text())
	assert.Empty(t, doc.Paragraphs[1].Runs)
}
