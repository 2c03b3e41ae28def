// Package parse implements the `tagexpr parse` command, which validates tag
// expressions and prints their canonical form.
package parse

import (
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "parse"

	ListTagsFlagName = "list-tags"
)

// Options are the options of the parse command.
type Options struct {
	*options.Options

	// ListTags prints the tags referenced by each expression after its canonical form.
	ListTags bool
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Parse tag expressions and print their canonical form.",
		ArgsUsage: "EXPR...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        ListTagsFlagName,
				EnvVars:     []string{options.EnvVar(CommandName + "-" + ListTagsFlagName)},
				Usage:       "Also print the tags referenced by each expression.",
				Destination: &cmdOpts.ListTags,
			},
		},
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, cliCtx.Args().Slice())
		},
	}
}
