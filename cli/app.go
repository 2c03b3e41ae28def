// Package cli implements the tagexpr command line application.
package cli

import (
	"github.com/gruntwork-io/tagexpr/cli/commands"
	"github.com/gruntwork-io/tagexpr/cli/commands/common"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/gruntwork-io/tagexpr/internal/telemetry"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/gruntwork-io/tagexpr/pkg/log"
	"github.com/urfave/cli/v2"
)

const AppName = "tagexpr"

// Version is set at build time with -ldflags "-X github.com/gruntwork-io/tagexpr/cli.Version=...".
var Version = "dev"

// NewApp creates the tagexpr CLI App.
func NewApp(opts *options.Options) *cli.App {
	var tlm *telemetry.Telemeter

	app := &cli.App{
		Name:      AppName,
		Usage:     "Parse, evaluate and filter with tag expressions such as 'fast & !(slow | flaky)'.",
		UsageText: "tagexpr [global options] <command> [command options] [arguments...]",
		Version:   Version,
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags:     NewGlobalFlags(opts),
		Commands:  commands.NewCommands(opts),

		// Expressions may legitimately be passed one per flag; commas are not split.
		DisableSliceFlagSeparator: true,
		Before: func(cliCtx *cli.Context) error {
			if err := initialSetup(cliCtx, opts); err != nil {
				return err
			}

			var err error

			tlm, err = telemetry.NewTelemeter(cliCtx.Context, AppName, Version, opts.ErrWriter, opts.Telemetry)
			if err != nil {
				return err
			}

			cliCtx.Context = telemetry.ContextWithTelemeter(cliCtx.Context, tlm)

			return nil
		},
		After: func(cliCtx *cli.Context) error {
			return tlm.Shutdown(cliCtx.Context)
		},
		ExitErrHandler: func(_ *cli.Context, _ error) {},
	}

	return app
}

// initialSetup configures the logger from the global flags and prepares the context shared by commands.
func initialSetup(cliCtx *cli.Context, opts *options.Options) error {
	level, err := log.ParseLevel(cliCtx.String(LogLevelFlagName))
	if err != nil {
		return errors.New(err)
	}

	formatter, err := log.ParseFormat(opts.LogFormat, !common.UseColor(opts))
	if err != nil {
		return err
	}

	opts.LogLevel = level
	opts.Logger = log.New(
		log.WithLevel(level),
		log.WithOutput(opts.ErrWriter),
		log.WithFormatter(formatter),
	)

	ctx := log.ContextWithLogger(cliCtx.Context, opts.Logger)
	ctx = tagfilter.ContextWithExpressionCache(ctx)
	cliCtx.Context = ctx

	opts.Logger.Debugf("%s version %s", AppName, Version)

	return nil
}
