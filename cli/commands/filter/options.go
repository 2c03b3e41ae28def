package filter

import (
	"slices"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

type Options struct {
	*options.Options

	// ItemsFile is the path of the items file.
	ItemsFile string

	// Includes and Excludes are appended to the expressions of the items file.
	Includes cli.StringSlice
	Excludes cli.StringSlice

	// NamePattern is a glob that item names must match.
	NamePattern string

	// OutputFormat is options.OutputFormatText or options.OutputFormatJSON.
	OutputFormat string

	Explain bool
}

func NewOptions(opts *options.Options) *Options {
	return &Options{
		Options:      opts,
		OutputFormat: options.OutputFormatText,
	}
}

func (o *Options) Validate() error {
	if !slices.Contains([]string{options.OutputFormatText, options.OutputFormatJSON}, o.OutputFormat) {
		return errors.Errorf("invalid output format %q, supported formats: %s, %s", o.OutputFormat, options.OutputFormatText, options.OutputFormatJSON)
	}

	return nil
}
