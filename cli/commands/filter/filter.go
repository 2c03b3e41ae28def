package filter

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/gruntwork-io/tagexpr/cli/commands/common"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/gruntwork-io/tagexpr/pkg/log"
)

// Run loads the items file, applies the filter and prints the selection.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := tagfilter.LoadConfigFile(ctx, opts.ItemsFile)
	if err != nil {
		return err
	}

	includes := slices.Concat(cfg.Include, opts.Includes.Value())
	excludes := slices.Concat(cfg.Exclude, opts.Excludes.Value())

	opts.Logger.WithFields(log.Fields{
		log.FieldKeyOrigin: opts.ItemsFile,
		log.FieldKeyCount:  len(cfg.Items),
	}).Debugf("Loaded items file")

	f, err := tagfilter.New(ctx, includes, excludes,
		tagfilter.WithNamePattern(opts.NamePattern),
		tagfilter.WithLogger(opts.Logger),
	)
	if err != nil {
		if failed := common.ReportParseErrors(opts.ErrWriter, err, common.UseColor(opts.Options)); failed > 0 {
			return common.ParseFailure(failed, len(includes)+len(excludes))
		}

		return err
	}

	if opts.Explain {
		return outputExplanations(opts, f, cfg.Items)
	}

	selected, err := f.Evaluate(ctx, cfg.Items)
	if err != nil {
		return err
	}

	opts.Logger.Tracef("Selected items: %s", itemsSummary(selected))

	switch opts.OutputFormat {
	case options.OutputFormatJSON:
		return outputJSON(opts, selected)
	default:
		return outputText(opts, selected)
	}
}

func outputText(opts *Options, items []tagfilter.Item) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(opts.Writer, item.Name); err != nil {
			return errors.New(err)
		}
	}

	return nil
}

func outputJSON(opts *Options, items []tagfilter.Item) error {
	if items == nil {
		items = []tagfilter.Item{}
	}

	jsonBytes, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.New(err)
	}

	if _, err := opts.Writer.Write(append(jsonBytes, '\n')); err != nil {
		return errors.New(err)
	}

	return nil
}

func outputExplanations(opts *Options, f *tagfilter.Filter, items []tagfilter.Item) error {
	explanations := make([]tagfilter.Explanation, len(items))
	for i, item := range items {
		explanations[i] = f.Explain(item)
	}

	if opts.OutputFormat == options.OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(explanations, "", "  ")
		if err != nil {
			return errors.New(err)
		}

		_, err = opts.Writer.Write(append(jsonBytes, '\n'))

		return errors.New(err)
	}

	for _, explanation := range explanations {
		mark := "-"
		if explanation.Selected {
			mark = "+"
		}

		fmt.Fprintf(opts.Writer, "%s %s\n", mark, explanation.Item.Name)

		if !explanation.NameMatched {
			fmt.Fprintf(opts.Writer, "    name does not match %q\n", opts.NamePattern)
		}

		for _, match := range slices.Concat(explanation.Includes, explanation.Excludes) {
			fmt.Fprintf(opts.Writer, "    %s %s: %t\n", match.Origin, match.Query, match.Matched)
		}
	}

	return nil
}

// itemsSummary is used in debug logs.
func itemsSummary(items []tagfilter.Item) string {
	return strings.Join(tagfilter.Items(items).Names(), ", ")
}
