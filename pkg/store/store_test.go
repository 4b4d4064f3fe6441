package store

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := Map[[]byte]{
		"a.txt": []byte("alpha"),
		"b.txt": []byte("beta"),
	}

	t.Run("keys", func(t *testing.T) {
		keys, err := m.Keys()
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"a.txt", "b.txt"}, keys)
	})

	t.Run("contains", func(t *testing.T) {
		ok, err := m.Contains("a.txt")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = m.Contains("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get absent key wraps ErrKeyNotFound", func(t *testing.T) {
		_, err := m.Get("missing")
		require.ErrorIs(t, err, ErrKeyNotFound)
	})
}

func TestFilterKeys(t *testing.T) {
	base := Map[[]byte]{
		"keep.doc":  []byte("1"),
		"keep.docx": []byte("2"),
		"skip.txt":  []byte("3"),
	}
	filtered := FilterKeys[[]byte](base, func(k string) bool {
		return strings.HasSuffix(k, ".doc") || strings.HasSuffix(k, ".docx")
	})

	t.Run("narrows enumeration", func(t *testing.T) {
		keys, err := filtered.Keys()
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"keep.doc", "keep.docx"}, keys)
	})

	t.Run("narrows membership", func(t *testing.T) {
		ok, err := filtered.Contains("skip.txt")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = filtered.Contains("keep.doc")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("membership still requires existence", func(t *testing.T) {
		ok, err := filtered.Contains("ghost.docx")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get passes through unguarded", func(t *testing.T) {
		// Filtering is an enumeration/membership concern only: a direct
		// lookup of an excluded-but-existing key still succeeds.
		v, err := filtered.Get("skip.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("3"), v)
	})
}

func TestMapValues(t *testing.T) {
	base := Map[[]byte]{
		"a": []byte("alpha"),
		"b": []byte("beta"),
	}

	t.Run("decodes on read", func(t *testing.T) {
		upper := MapValues[[]byte, string](base, func(b []byte) (string, error) {
			return strings.ToUpper(string(b)), nil
		})

		v, err := upper.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "ALPHA", v)
	})

	t.Run("enumeration never decodes", func(t *testing.T) {
		calls := 0
		counted := MapValues[[]byte, string](base, func(b []byte) (string, error) {
			calls++
			return string(b), nil
		})

		_, err := counted.Keys()
		require.NoError(t, err)
		_, err = counted.Contains("a")
		require.NoError(t, err)
		assert.Zero(t, calls)
	})

	t.Run("decodes once per access with no memoization", func(t *testing.T) {
		calls := 0
		counted := MapValues[[]byte, string](base, func(b []byte) (string, error) {
			calls++
			return string(b), nil
		})

		first, err := counted.Get("a")
		require.NoError(t, err)
		second, err := counted.Get("a")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, calls)
	})

	t.Run("decode error surfaces verbatim", func(t *testing.T) {
		boom := errors.New("boom")
		failing := MapValues[[]byte, string](base, func([]byte) (string, error) {
			return "", boom
		})

		_, err := failing.Get("a")
		require.ErrorIs(t, err, boom)
	})

	t.Run("absent key error propagates without decoding", func(t *testing.T) {
		calls := 0
		counted := MapValues[[]byte, string](base, func(b []byte) (string, error) {
			calls++
			return string(b), nil
		})

		_, err := counted.Get("missing")
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Zero(t, calls)
	})
}

func TestMapKeys(t *testing.T) {
	base := Map[[]byte]{
		"report.docx": []byte("r"),
		"notes.docx":  []byte("n"),
	}
	renamed := MapKeys[[]byte](base,
		func(k string) string { return k + ".docx" },
		func(k string) string { return strings.TrimSuffix(k, ".docx") },
	)

	t.Run("keys renamed", func(t *testing.T) {
		keys, err := renamed.Keys()
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"notes", "report"}, keys)
	})

	t.Run("lookup through outer name", func(t *testing.T) {
		v, err := renamed.Get("report")
		require.NoError(t, err)
		assert.Equal(t, []byte("r"), v)

		ok, err := renamed.Contains("notes")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("base name not visible", func(t *testing.T) {
		ok, err := renamed.Contains("report.docx")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestWrapperComposition(t *testing.T) {
	// Filter then decode, the composition the document stores are built
	// from: the decoder only ever fires for keys the caller reads.
	base := Map[[]byte]{
		"a.docx": []byte("alpha"),
		"b.txt":  []byte("beta"),
	}
	calls := 0
	composed := MapValues[[]byte, string](
		FilterKeys[[]byte](base, func(k string) bool { return strings.HasSuffix(k, ".docx") }),
		func(b []byte) (string, error) {
			calls++
			return string(b), nil
		},
	)

	keys, err := composed.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.docx"}, keys)
	assert.Zero(t, calls)

	v, err := composed.Get("a.docx")
	require.NoError(t, err)
	assert.Equal(t, "alpha", v)
	assert.Equal(t, 1, calls)
}
