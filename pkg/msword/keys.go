// Package msword exposes collections of MS Word documents as read-only
// key-value stores: keys are file identifiers, values are either decoded
// documents or their extracted plain text.
//
// Everything here is a thin composition of the generic wrappers in
// pkg/store with the decoder in pkg/docx; no store materializes or caches
// values, and decoding happens lazily per access.
package msword

import (
	"strings"

	"github.com/docfoundry/wordstore/pkg/store"
)

// DefaultExtension is the extension assumed by the key transform helpers.
const DefaultExtension = ".docx"

// wordExtensions are the recognized MS Word file extensions, matched
// case-sensitively against the substring after the final dot of a key.
var wordExtensions = map[string]struct{}{
	"doc":  {},
	"docx": {},
}

// extension returns the substring after the final dot of key, or "" when
// the key contains no dot.
func extension(key string) string {
	i := strings.LastIndexByte(key, '.')
	if i < 0 {
		return ""
	}
	return key[i+1:]
}

// HasWordExtension reports whether key has a recognized MS Word extension
// (.doc or .docx). A key with no dot never matches.
func HasWordExtension(key string) bool {
	_, ok := wordExtensions[extension(key)]
	return ok
}

// OnlyWordExtensions narrows a store's visible keys to those with a
// recognized MS Word extension. Only enumeration and membership are
// affected; direct Get of an excluded key still reaches the base store
// (see store.FilterKeys).
func OnlyWordExtensions[V any](base store.Store[V]) store.Store[V] {
	return store.FilterKeys(base, HasWordExtension)
}

// StripDefaultExtension removes a trailing ".docx" from key, if present.
func StripDefaultExtension(key string) string {
	return strings.TrimSuffix(key, DefaultExtension)
}

// AddDefaultExtension appends ".docx" to key.
func AddDefaultExtension(key string) string {
	return key + DefaultExtension
}

// ExtensionlessKeys narrows base to keys ending in ".docx" and hides that
// extension in the outer key space, so "report.docx" is addressed as
// "report". Not meant to be combined with OnlyWordExtensions; it performs
// its own filtering.
func ExtensionlessKeys[V any](base store.Store[V]) store.Store[V] {
	docxOnly := store.FilterKeys(base, func(k string) bool {
		return strings.HasSuffix(k, DefaultExtension)
	})
	return store.MapKeys(docxOnly, AddDefaultExtension, StripDefaultExtension)
}
