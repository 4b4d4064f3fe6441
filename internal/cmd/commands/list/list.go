package list

import (
	"flag"
	"fmt"
	"sort"

	"github.com/docfoundry/wordstore/internal/cmd/base"
	"github.com/docfoundry/wordstore/internal/sourcing"
	"github.com/docfoundry/wordstore/pkg/msword"
)

type Command struct {
	*base.Command

	flagPath    string
	flagArchive string
	flagConfig  string
	flagAll     bool
}

func (c *Command) Synopsis() string {
	return "List the documents visible in a source"
}

func (c *Command) Help() string {
	return `Usage: wordstore list [options]

  Lists the keys of a document source, sorted. By default only keys with
  a recognized MS Word extension (.doc, .docx) are shown; use -all to list
  every key of the source.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(&c.flagPath, "path", "", "Directory of documents.")
	f.StringVar(&c.flagArchive, "archive", "", "Zip archive of documents.")
	f.StringVar(&c.flagConfig, "config", "", "Path to a wordstore config file.")
	f.BoolVar(&c.flagAll, "all", false,
		"List every key, not just those with MS Word extensions.")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	byteStore, _, err := sourcing.Resolve(sourcing.Options{
		Path:       c.flagPath,
		Archive:    c.flagArchive,
		ConfigPath: c.flagConfig,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	src := byteStore
	if !c.flagAll {
		src = msword.OnlyWordExtensions(byteStore)
	}

	keys, err := src.Keys()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing documents: %v", err))
		return 1
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.UI.Output(k)
	}
	c.Log.Debug("listed documents", "count", len(keys), "all", c.flagAll)
	return 0
}
