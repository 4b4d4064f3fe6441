package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/docfoundry/wordstore/internal/cmd/base"
	"github.com/docfoundry/wordstore/internal/cmd/commands/cat"
	"github.com/docfoundry/wordstore/internal/cmd/commands/export"
	"github.com/docfoundry/wordstore/internal/cmd/commands/list"
	versioncmd "github.com/docfoundry/wordstore/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

// initCommands builds the command registry with a shared base command.
func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"list": func() (cli.Command, error) {
			return &list.Command{Command: baseCommand}, nil
		},
		"cat": func() (cli.Command, error) {
			return &cat.Command{Command: baseCommand}, nil
		},
		"export": func() (cli.Command, error) {
			return &export.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
