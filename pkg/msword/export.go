package msword

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/docfoundry/wordstore/pkg/store"
)

// TextExporter writes the extracted text of every visible key of a
// text-valued store to files under a target filesystem. The source
// documents are never touched.
type TextExporter struct {
	Source store.Store[string]
	Target afero.Fs
	Logger hclog.Logger
}

// Export extracts the text for every key of the source store and writes it
// to dir, one ".txt" file per key (the key's own extension is replaced).
// Keys are processed in sorted order. Per-key failures are collected and
// do not stop the run; the returned error aggregates them.
func (e *TextExporter) Export(dir string) error {
	logger := e.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	keys, err := e.Source.Keys()
	if err != nil {
		return fmt.Errorf("listing source keys: %w", err)
	}
	sort.Strings(keys)

	if err := e.Target.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	var result *multierror.Error
	for _, key := range keys {
		text, err := e.Source.Get(key)
		if err != nil {
			logger.Warn("skipping document", "key", key, "error", err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", key, err))
			continue
		}

		out := path.Join(dir, exportName(key))
		if parent := path.Dir(out); parent != "." {
			if err := e.Target.MkdirAll(parent, 0o755); err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", key, err))
				continue
			}
		}
		if err := afero.WriteFile(e.Target, out, []byte(text), 0o644); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", key, err))
			continue
		}
		logger.Info("exported document text", "key", key, "out", out, "bytes", len(text))
	}

	return result.ErrorOrNil()
}

// exportName maps a source key to its output file name: the extension
// after the final dot is replaced with "txt".
func exportName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[:i]
	}
	return key + ".txt"
}
