package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileStore is a byte-valued Store over a directory of an afero filesystem.
//
// Keys are slash-separated paths relative to the root. Hidden files and
// directories (names starting with a dot) are not enumerated, matching the
// usual convention for local document folders; they can still be read by
// direct key lookup.
type FileStore struct {
	fs   afero.Fs
	root string
}

// NewFileStore returns a FileStore over root on fsys. The root is not
// required to exist until the store is first used.
func NewFileStore(fsys afero.Fs, root string) *FileStore {
	return &FileStore{fs: fsys, root: root}
}

// NewLocalFileStore returns a FileStore over a directory on the OS
// filesystem.
func NewLocalFileStore(root string) *FileStore {
	return NewFileStore(afero.NewOsFs(), root)
}

func (s *FileStore) Keys() ([]string, error) {
	var keys []string
	err := afero.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if path != s.root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.root, err)
	}
	return keys, nil
}

func (s *FileStore) Contains(key string) (bool, error) {
	info, err := s.fs.Stat(s.path(key))
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *FileStore) Get(key string) ([]byte, error) {
	b, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrKeyNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return b, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
