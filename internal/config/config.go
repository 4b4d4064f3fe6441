// Package config loads and validates the wordstore configuration file.
//
// Configuration is HCL, for example:
//
//	source {
//	  path = "./docs"
//	}
//	paragraph_separator = "\n"
//	log_level           = "info"
//
// A source names either a directory (path) or a zip archive (archive),
// never both.
package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the top-level configuration.
type Config struct {
	// Source selects where documents are read from.
	Source *Source `hcl:"source,block"`

	// ParagraphSeparator joins paragraph texts during extraction.
	// Defaults to a single newline.
	ParagraphSeparator *string `hcl:"paragraph_separator,optional"`

	// LogLevel is one of trace, debug, info, warn, error. Defaults to info.
	LogLevel string `hcl:"log_level,optional"`
}

// Source selects the document source.
type Source struct {
	// Path is a directory of documents.
	Path string `hcl:"path,optional"`

	// Archive is a zip archive whose entries are documents.
	Archive string `hcl:"archive,optional"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.LogLevel,
			validation.In("", "trace", "debug", "info", "warn", "error")),
	); err != nil {
		return err
	}

	if c.Source.Path == "" && c.Source.Archive == "" {
		return fmt.Errorf("source: one of path or archive is required")
	}
	if c.Source.Path != "" && c.Source.Archive != "" {
		return fmt.Errorf("source: path and archive are mutually exclusive")
	}
	return nil
}

// Separator returns the configured paragraph separator, or dflt when the
// configuration leaves it unset. An explicitly configured empty string is
// respected.
func (c *Config) Separator(dflt string) string {
	if c.ParagraphSeparator == nil {
		return dflt
	}
	return *c.ParagraphSeparator
}
