package version

import (
	"github.com/docfoundry/wordstore/internal/cmd/base"
	buildversion "github.com/docfoundry/wordstore/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the wordstore version"
}

func (c *Command) Help() string {
	return "Usage: wordstore version\n\n  Prints the wordstore version."
}

func (c *Command) Run(args []string) int {
	c.UI.Output(buildversion.Version)
	return 0
}
