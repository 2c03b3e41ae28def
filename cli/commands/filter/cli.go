// Package filter implements the `tagexpr filter` command, which selects items
// from an items file by include and exclude tag expressions.
package filter

import (
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "filter"

	ItemsFlagName   = "items"
	IncludeFlagName = "include"
	ExcludeFlagName = "exclude"
	NameFlagName    = "name"
	OutputFlagName  = "output"
	ExplainFlagName = "explain"
)

func NewFlags(opts *Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        ItemsFlagName,
			Aliases:     []string{"f"},
			EnvVars:     []string{options.EnvVar(ItemsFlagName)},
			Usage:       "Path to an items file (.hcl, .yaml, .yml or .json).",
			Required:    true,
			Destination: &opts.ItemsFile,
		},
		&cli.StringSliceFlag{
			Name:        IncludeFlagName,
			Aliases:     []string{"i"},
			Usage:       "Select items matching the tag expression. Repeat to select the union.",
			Destination: &opts.Includes,
		},
		&cli.StringSliceFlag{
			Name:        ExcludeFlagName,
			Aliases:     []string{"e"},
			Usage:       "Drop items matching the tag expression. May be repeated.",
			Destination: &opts.Excludes,
		},
		&cli.StringFlag{
			Name:        NameFlagName,
			EnvVars:     []string{options.EnvVar(CommandName + "-" + NameFlagName)},
			Usage:       "Only consider items whose name matches the glob, e.g. 'api/**'.",
			Destination: &opts.NamePattern,
		},
		&cli.StringFlag{
			Name:        OutputFlagName,
			Aliases:     []string{"o"},
			EnvVars:     []string{options.EnvVar(OutputFlagName)},
			Usage:       "Output format: text or json.",
			Value:       opts.OutputFormat,
			Destination: &opts.OutputFormat,
		},
		&cli.BoolFlag{
			Name:        ExplainFlagName,
			Usage:       "Print, for every item, which expressions matched.",
			Destination: &opts.Explain,
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Select items from an items file by tag expressions.",
		UsageText: "tagexpr filter --items FILE [--include EXPR]... [--exclude EXPR]... [--name GLOB] [--output text|json]",
		Flags:     NewFlags(cmdOpts),
		Before: func(_ *cli.Context) error {
			return cmdOpts.Validate()
		},
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts)
		},
	}
}
