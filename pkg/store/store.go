// Package store provides a read-only key-value view over a file namespace
// and a small set of composable wrappers that narrow the visible keys or
// decode the values of a base store without copying or mutating it.
//
// Wrappers are lazy: values are decoded per access, enumeration never
// triggers decoding, and nothing is memoized. A wrapper holds no mutable
// state of its own, so it is safe for concurrent use whenever its base is.
package store

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned (wrapped) by Get when the requested key does
// not exist in the underlying source.
var ErrKeyNotFound = errors.New("key not found")

// Store is a read-only mapping from string keys to values of type V.
//
// Implementations must treat every call as independent: Get performs a
// fresh read, and no call has side effects on the underlying source.
type Store[V any] interface {
	// Keys returns the visible keys. Order is not specified.
	Keys() ([]string, error)

	// Contains reports whether key is visible in this store.
	Contains(key string) (bool, error)

	// Get returns the value for key. If the key is absent the returned
	// error wraps ErrKeyNotFound.
	Get(key string) (V, error)
}

// filtered narrows the visible keys of a base store.
type filtered[V any] struct {
	base Store[V]
	keep func(string) bool
}

// FilterKeys returns a view of base whose Keys and Contains only expose
// keys for which keep returns true.
//
// Filtering affects enumeration and membership only: Get passes through to
// the base store unguarded, so a direct lookup of an excluded-but-existing
// key still reaches the base (and its decoder, if any). Callers that need
// lookups guarded as well can compose the keep predicate into their own
// Get path.
func FilterKeys[V any](base Store[V], keep func(string) bool) Store[V] {
	return &filtered[V]{base: base, keep: keep}
}

func (s *filtered[V]) Keys() ([]string, error) {
	all, err := s.base.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for _, k := range all {
		if s.keep(k) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *filtered[V]) Contains(key string) (bool, error) {
	if !s.keep(key) {
		return false, nil
	}
	return s.base.Contains(key)
}

func (s *filtered[V]) Get(key string) (V, error) {
	return s.base.Get(key)
}

// mapped decodes values of a base store on read.
type mapped[V, W any] struct {
	base   Store[V]
	decode func(V) (W, error)
}

// MapValues returns a view of base whose Get applies decode to the value
// read from the base store. Decoding happens strictly on demand, once per
// access; Keys and Contains delegate to the base untouched. Decode errors
// surface verbatim to the caller.
func MapValues[V, W any](base Store[V], decode func(V) (W, error)) Store[W] {
	return &mapped[V, W]{base: base, decode: decode}
}

func (s *mapped[V, W]) Keys() ([]string, error) {
	return s.base.Keys()
}

func (s *mapped[V, W]) Contains(key string) (bool, error) {
	return s.base.Contains(key)
}

func (s *mapped[V, W]) Get(key string) (W, error) {
	var zero W
	v, err := s.base.Get(key)
	if err != nil {
		return zero, err
	}
	return s.decode(v)
}

// keymapped renames the key space of a base store.
type keymapped[V any] struct {
	base     Store[V]
	toBase   func(string) string
	fromBase func(string) string
}

// MapKeys returns a view of base with a renamed key space. fromBase maps a
// base key to its outer name (used by Keys); toBase maps an outer name back
// to the base key (used by Contains and Get). The two functions must be
// inverses over the base key space.
func MapKeys[V any](base Store[V], toBase, fromBase func(string) string) Store[V] {
	return &keymapped[V]{base: base, toBase: toBase, fromBase: fromBase}
}

func (s *keymapped[V]) Keys() ([]string, error) {
	inner, err := s.base.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(inner))
	for i, k := range inner {
		keys[i] = s.fromBase(k)
	}
	return keys, nil
}

func (s *keymapped[V]) Contains(key string) (bool, error) {
	return s.base.Contains(s.toBase(key))
}

func (s *keymapped[V]) Get(key string) (V, error) {
	return s.base.Get(s.toBase(key))
}

// Map is an in-memory Store backed by a plain map. It is primarily useful
// as a base store in tests and small programs.
type Map[V any] map[string]V

func (m Map[V]) Keys() ([]string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m Map[V]) Contains(key string) (bool, error) {
	_, ok := m[key]
	return ok, nil
}

func (m Map[V]) Get(key string) (V, error) {
	v, ok := m[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	}
	return v, nil
}
