// Package docxtest builds minimal but valid in-memory word-processing
// packages for use as test fixtures.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
)

// Para describes one paragraph of a fixture document.
type Para struct {
	// Style is the paragraph style identifier; empty for no explicit style.
	Style string

	// Runs are the paragraph's run texts. A paragraph with no runs is
	// written as an empty paragraph.
	Runs []string
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Build assembles a word-processing package containing the given
// paragraphs and returns it as raw bytes.
func Build(paras ...Para) []byte {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paras {
		doc.WriteString(`<w:p>`)
		if p.Style != "" {
			doc.WriteString(`<w:pPr><w:pStyle w:val="`)
			escape(&doc, p.Style)
			doc.WriteString(`"/></w:pPr>`)
		}
		for _, r := range p.Runs {
			doc.WriteString(`<w:r><w:t xml:space="preserve">`)
			escape(&doc, r)
			doc.WriteString(`</w:t></w:r>`)
		}
		doc.WriteString(`</w:p>`)
	}
	doc.WriteString(`<w:sectPr/></w:body></w:document>`)

	var pkg bytes.Buffer
	zw := zip.NewWriter(&pkg)
	for _, part := range []struct {
		name string
		body []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/document.xml", doc.Bytes()},
	} {
		w, err := zw.Create(part.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write(part.body); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return pkg.Bytes()
}

// BuildText assembles a package with one single-run paragraph per text.
func BuildText(texts ...string) []byte {
	paras := make([]Para, len(texts))
	for i, t := range texts {
		if t != "" {
			paras[i].Runs = []string{t}
		}
	}
	return Build(paras...)
}

func escape(buf *bytes.Buffer, s string) {
	// xml.EscapeText only fails on a failing writer; bytes.Buffer never does.
	_ = xml.EscapeText(buf, []byte(s))
}
