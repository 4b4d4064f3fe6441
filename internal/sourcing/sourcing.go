// Package sourcing resolves command-line flags and the optional config
// file into a byte-valued document source.
package sourcing

import (
	"fmt"

	"github.com/docfoundry/wordstore/internal/config"
	"github.com/docfoundry/wordstore/pkg/store"
)

// Options are the source-selection inputs shared by the CLI commands.
// Flags take precedence over the config file.
type Options struct {
	// Path is a directory of documents (-path flag).
	Path string

	// Archive is a zip archive of documents (-archive flag).
	Archive string

	// ConfigPath is an optional HCL config file (-config flag).
	ConfigPath string
}

// Resolve returns the byte-valued store selected by opts, plus the loaded
// config when a config file was given (nil otherwise).
func Resolve(opts Options) (store.Store[[]byte], *config.Config, error) {
	var cfg *config.Config
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	path, archive := opts.Path, opts.Archive
	if path == "" && archive == "" && cfg != nil {
		path, archive = cfg.Source.Path, cfg.Source.Archive
	}

	switch {
	case path != "" && archive != "":
		return nil, nil, fmt.Errorf("path and archive are mutually exclusive")
	case path != "":
		return store.NewLocalFileStore(path), cfg, nil
	case archive != "":
		s, err := store.NewArchiveStore(archive)
		if err != nil {
			return nil, nil, err
		}
		return s, cfg, nil
	default:
		return nil, nil, fmt.Errorf("no document source: use -path, -archive or -config")
	}
}
