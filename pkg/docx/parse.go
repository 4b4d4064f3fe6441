package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// documentPath is the fixed location of the main document part inside a
// word-processing package.
const documentPath = "word/document.xml"

// DecodeError reports that a byte sequence could not be decoded as a
// word-processing package.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding docx: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decoding docx: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Parse decodes an in-memory word-processing package into a Document.
//
// The bytes are treated as a seekable zip archive; the main document part
// (word/document.xml) is streamed with an XML token decoder. Bytes that do
// not form a valid package yield a *DecodeError.
func Parse(b []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, &DecodeError{Reason: "not a zip package", Err: err}
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPath {
			part = f
			break
		}
	}
	if part == nil {
		return nil, &DecodeError{Reason: documentPath + " not found in package"}
	}

	rc, err := part.Open()
	if err != nil {
		return nil, &DecodeError{Reason: "opening " + documentPath, Err: err}
	}
	defer rc.Close()

	doc, err := parseDocumentXML(rc)
	if err != nil {
		return nil, &DecodeError{Reason: "parsing " + documentPath, Err: err}
	}
	return doc, nil
}

// parseDocumentXML walks the WordprocessingML token stream and collects
// body-level paragraphs. Paragraphs nested in tables are skipped, and
// character data is only captured inside w:t elements.
func parseDocumentXML(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	doc := &Document{}
	var (
		para       *Paragraph
		run        *bytes.Buffer
		inText     bool
		tableDepth int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					para = &Paragraph{}
				}
			case "pStyle":
				if para != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							para.StyleID = attr.Value
						}
					}
				}
			case "r":
				if para != nil {
					run = &bytes.Buffer{}
				}
			case "t":
				if run != nil {
					inText = true
				}
			case "tab":
				if run != nil {
					run.WriteByte('\t')
				}
			case "br", "cr":
				if run != nil {
					run.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText && run != nil {
				run.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "r":
				if para != nil && run != nil {
					para.Runs = append(para.Runs, Run{Text: run.String()})
				}
				run = nil
			case "p":
				if para != nil {
					doc.Paragraphs = append(doc.Paragraphs, *para)
				}
				para = nil
			}
		}
	}

	return doc, nil
}
