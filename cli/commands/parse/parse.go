package parse

import (
	"context"
	"fmt"
	"strings"

	"github.com/gruntwork-io/tagexpr/cli/commands/common"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
)

// Run parses every expression, printing canonical forms to opts.Writer and
// diagnostics to opts.ErrWriter.
func Run(ctx context.Context, opts *Options, exprs []string) error {
	if len(exprs) == 0 {
		return errors.New("no tag expressions given, usage: tagexpr parse EXPR...")
	}

	useColor := common.UseColor(opts.Options)
	failed := 0

	for i, text := range exprs {
		var result tagexpr.ParseResult

		// The span records the parse error; the diagnostic is rendered from result.
		if err := tagfilter.TraceParse(ctx, text, func(_ context.Context) error {
			result = tagexpr.Parse(text)
			if parseErr := result.Err(); parseErr != nil {
				return parseErr
			}

			return nil
		}); err != nil {
			failed++

			origin := ""
			if len(exprs) > 1 {
				origin = fmt.Sprintf("EXPR[%d]", i)
			}

			fmt.Fprint(opts.ErrWriter, tagexpr.FormatDiagnostic(result.Err(), origin, useColor))

			continue
		}

		expr := result.Expression()

		opts.Logger.Debugf("Parsed %q as %s", text, expr)

		if opts.ListTags {
			fmt.Fprintf(opts.Writer, "%s\ttags: %s\n", expr, strings.Join(tagexpr.Tags(expr), ", "))
		} else {
			fmt.Fprintln(opts.Writer, expr)
		}
	}

	if failed > 0 {
		return common.ParseFailure(failed, len(exprs))
	}

	return nil
}
