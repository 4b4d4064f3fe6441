package store

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ArchiveStore is a byte-valued Store over the entries of a zip archive.
// Entry names become keys; directory entries are excluded. The archive is
// held in memory and never modified.
type ArchiveStore struct {
	entries map[string]*zip.File
}

// NewArchiveStore opens the zip archive at path and returns a store over
// its entries.
func NewArchiveStore(path string) (*ArchiveStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", path, err)
	}
	return NewArchiveStoreFromBytes(b)
}

// NewArchiveStoreFromBytes returns a store over the entries of a zip
// archive given as raw bytes.
func NewArchiveStoreFromBytes(b []byte) (*ArchiveStore, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			continue
		}
		entries[f.Name] = f
	}
	return &ArchiveStore{entries: entries}, nil
}

func (s *ArchiveStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.entries))
	for name := range s.entries {
		keys = append(keys, name)
	}
	return keys, nil
}

func (s *ArchiveStore) Contains(key string) (bool, error) {
	_, ok := s.entries[key]
	return ok, nil
}

func (s *ArchiveStore) Get(key string) ([]byte, error) {
	f, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %s: %w", key, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("reading entry %s: %w", key, err)
	}
	return buf.Bytes(), nil
}
