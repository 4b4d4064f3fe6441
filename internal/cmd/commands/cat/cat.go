package cat

import (
	"flag"
	"fmt"

	"github.com/docfoundry/wordstore/internal/cmd/base"
	"github.com/docfoundry/wordstore/internal/sourcing"
	"github.com/docfoundry/wordstore/pkg/msword"
)

type Command struct {
	*base.Command

	flagPath      string
	flagArchive   string
	flagConfig    string
	flagSeparator string
	flagAll       bool
}

func (c *Command) Synopsis() string {
	return "Print the extracted text of a document"
}

func (c *Command) Help() string {
	return `Usage: wordstore cat [options] <key>

  Reads one document from the source by key and prints its extracted
  plain text: the text of every paragraph in order, joined with the
  paragraph separator (newline by default).` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("cat", flag.ContinueOnError))

	f.StringVar(&c.flagPath, "path", "", "Directory of documents.")
	f.StringVar(&c.flagArchive, "archive", "", "Zip archive of documents.")
	f.StringVar(&c.flagConfig, "config", "", "Path to a wordstore config file.")
	f.StringVar(&c.flagSeparator, "separator", msword.DefaultParagraphSep,
		"Paragraph separator used when joining paragraph texts.")
	f.BoolVar(&c.flagAll, "all", false,
		"Allow keys without an MS Word extension.")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if len(f.Args()) != 1 {
		c.UI.Error("exactly one document key is required")
		return 1
	}
	key := f.Args()[0]

	byteStore, cfg, err := sourcing.Resolve(sourcing.Options{
		Path:       c.flagPath,
		Archive:    c.flagArchive,
		ConfigPath: c.flagConfig,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	sep := c.flagSeparator
	if sep == msword.DefaultParagraphSep && cfg != nil {
		sep = cfg.Separator(sep)
	}

	if !c.flagAll && !msword.HasWordExtension(key) {
		c.UI.Error(fmt.Sprintf(
			"%s has no MS Word extension; use -all to decode it anyway", key))
		return 1
	}

	texts := msword.TextStoreWithSeparator(byteStore, sep)
	if c.flagAll {
		texts = msword.AllFilesTextStoreWithSeparator(byteStore, sep)
	}

	text, err := texts.Get(key)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading %s: %v", key, err))
		return 1
	}

	c.UI.Output(text)
	return 0
}
