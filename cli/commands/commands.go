// Package commands assembles the tagexpr subcommands.
package commands

import (
	"github.com/gruntwork-io/tagexpr/cli/commands/eval"
	"github.com/gruntwork-io/tagexpr/cli/commands/filter"
	"github.com/gruntwork-io/tagexpr/cli/commands/parse"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

// NewCommands returns all commands, each guarded against panics.
func NewCommands(opts *options.Options) []*cli.Command {
	cmds := []*cli.Command{
		parse.NewCommand(opts),
		eval.NewCommand(opts),
		filter.NewCommand(opts),
	}

	for _, cmd := range cmds {
		cmd.Action = errors.WithPanicHandling(cmd.Action)
	}

	return cmds
}
