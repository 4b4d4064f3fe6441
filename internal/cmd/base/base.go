// Package base carries the pieces shared by every CLI command: the UI,
// the logger, and a flag set that can render its own help text.
package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every subcommand.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// NewCommand returns a Command with the given logger and UI.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{UI: ui, Log: log}
}

// FlagSet wraps a flag.FlagSet so commands can append its help output to
// their own.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps fs. The flag set's own output is suppressed; errors are
// reported through the command UI instead.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.Usage = func() {}
	fs.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: fs}
}

// Help renders the flag set's options as an indented block suitable for
// appending to a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nCommand Options:\n")
	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString(fmt.Sprintf("  -%s\n", fl.Name))
		usage := strings.ReplaceAll(fl.Usage, "\n", "\n      ")
		b.WriteString(fmt.Sprintf("      %s", usage))
		if fl.DefValue != "" && fl.DefValue != "false" {
			b.WriteString(fmt.Sprintf(" (default: %s)", fl.DefValue))
		}
		b.WriteString("\n")
	})
	return b.String()
}
