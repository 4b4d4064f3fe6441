package msword

import (
	"github.com/docfoundry/wordstore/pkg/docx"
	"github.com/docfoundry/wordstore/pkg/store"
)

// The composite stores below are pure compositions of the extension filter
// and the byte decoders over an arbitrary byte-valued base store. The base
// may be a directory (store.FileStore), a zip archive (store.ArchiveStore)
// or anything else satisfying store.Store[[]byte].

// AllFilesDocumentStore returns a view of base whose values are decoded
// documents. Keys are not filtered, so reading a non-Word file raises a
// *docx.DecodeError.
func AllFilesDocumentStore(base store.Store[[]byte]) store.Store[*docx.Document] {
	return store.MapValues(base, BytesToDocument)
}

// AllFilesTextStore returns a view of base whose values are the extracted
// plain text of each document, paragraphs joined with the default
// separator. Keys are not filtered.
func AllFilesTextStore(base store.Store[[]byte]) store.Store[string] {
	return store.MapValues(base, BytesToText(DefaultParagraphSep))
}

// AllFilesTextStoreWithSeparator is AllFilesTextStore with a caller-chosen
// paragraph separator.
func AllFilesTextStoreWithSeparator(base store.Store[[]byte], sep string) store.Store[string] {
	return store.MapValues(base, BytesToText(sep))
}

// DocumentStore returns a view of base narrowed to keys with a recognized
// MS Word extension, with values decoded to documents.
func DocumentStore(base store.Store[[]byte]) store.Store[*docx.Document] {
	return AllFilesDocumentStore(OnlyWordExtensions(base))
}

// TextStore returns a view of base narrowed to keys with a recognized MS
// Word extension, with values decoded to extracted text using the default
// paragraph separator.
func TextStore(base store.Store[[]byte]) store.Store[string] {
	return AllFilesTextStore(OnlyWordExtensions(base))
}

// TextStoreWithSeparator is TextStore with a caller-chosen paragraph
// separator.
func TextStoreWithSeparator(base store.Store[[]byte], sep string) store.Store[string] {
	return store.MapValues(OnlyWordExtensions(base), BytesToText(sep))
}
