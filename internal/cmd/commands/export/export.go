package export

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/docfoundry/wordstore/internal/cmd/base"
	"github.com/docfoundry/wordstore/internal/sourcing"
	"github.com/docfoundry/wordstore/pkg/msword"
)

type Command struct {
	*base.Command

	flagPath      string
	flagArchive   string
	flagConfig    string
	flagOut       string
	flagSeparator string
}

func (c *Command) Synopsis() string {
	return "Extract text from every document into an output directory"
}

func (c *Command) Help() string {
	return `Usage: wordstore export [options]

  Extracts the plain text of every document with a recognized MS Word
  extension and writes it to the output directory, one .txt file per
  document. Documents that fail to decode are skipped and reported; the
  rest are still exported.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("export", flag.ContinueOnError))

	f.StringVar(&c.flagPath, "path", "", "Directory of documents.")
	f.StringVar(&c.flagArchive, "archive", "", "Zip archive of documents.")
	f.StringVar(&c.flagConfig, "config", "", "Path to a wordstore config file.")
	f.StringVar(&c.flagOut, "out", "", "(Required) Output directory for extracted text.")
	f.StringVar(&c.flagSeparator, "separator", msword.DefaultParagraphSep,
		"Paragraph separator used when joining paragraph texts.")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagOut == "" {
		c.UI.Error("out flag is required")
		return 1
	}

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

	exporter := &msword.TextExporter{
		Source: msword.TextStoreWithSeparator(byteStore, sep),
		Target: afero.NewOsFs(),
		Logger: c.Log,
	}

	if err := exporter.Export(c.flagOut); err != nil {
		c.UI.Error(fmt.Sprintf("export finished with errors: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("exported document text to %s", c.flagOut))
	return 0
}
