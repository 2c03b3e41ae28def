// Package eval implements the `tagexpr eval` command, which evaluates one
// tag expression against a set of tags.
package eval

import (
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "eval"

	TagsFlagName     = "tags"
	ExitCodeFlagName = "exit-code"
)

// Options are the options of the eval command.
type Options struct {
	*options.Options

	// Tags is a comma separated list of tags; the flag may be repeated.
	Tags cli.StringSlice

	// ExitCode makes a false result exit with ExitCodeNoMatch instead of 0.
	ExitCode bool
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Evaluate a tag expression against a set of tags and print true or false.",
		ArgsUsage: "EXPR",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        TagsFlagName,
				Aliases:     []string{"t"},
				EnvVars:     []string{options.EnvVar(TagsFlagName)},
				Usage:       "Tags to evaluate against, e.g. --tags fast,api.",
				Destination: &cmdOpts.Tags,
			},
			&cli.BoolFlag{
				Name:        ExitCodeFlagName,
				Usage:       "Exit with code 2 when the expression does not match.",
				Destination: &cmdOpts.ExitCode,
			},
		},
		Action: func(cliCtx *cli.Context) error {
			if cliCtx.NArg() != 1 {
				return cli.Exit("expected exactly one tag expression, usage: tagexpr eval --tags a,b EXPR", 1)
			}

			return Run(cliCtx.Context, cmdOpts, cliCtx.Args().First())
		},
	}
}
