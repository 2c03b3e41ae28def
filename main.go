package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/tagexpr/cli"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/gruntwork-io/tagexpr/pkg/log"
)

// The main entrypoint for tagexpr
func main() {
	opts := options.NewOptions()

	defer errors.Recover(checkForErrorsAndExit(opts))

	app := cli.NewApp(opts)

	ctx := log.ContextWithLogger(context.Background(), opts.Logger)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(opts *options.Options) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		// opts.Logger is replaced once the global flags are parsed.
		logger := opts.Logger

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(cli.ExitCode(err))
	}
}
