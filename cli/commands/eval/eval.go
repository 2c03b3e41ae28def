package eval

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gruntwork-io/tagexpr/cli/commands/common"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/gruntwork-io/tagexpr/pkg/log"
)

// ExitCodeNoMatch is the exit code for a false result when --exit-code is set.
const ExitCodeNoMatch = 2

// Run evaluates text against the tags of opts and prints the result.
func Run(ctx context.Context, opts *Options, text string) error {
	var expr tagexpr.Expression

	err := tagfilter.TraceParse(ctx, text, func(_ context.Context) error {
		var err error

		expr, err = tagexpr.Compile(text)

		return err
	})
	if err != nil {
		if common.ReportParseErrors(opts.ErrWriter, err, common.UseColor(opts.Options)) > 0 {
			return common.ParseFailure(1, 1)
		}

		return err
	}

	tags := SplitTags(opts.Tags.Value())
	matched := tagexpr.Evaluate(expr, tags)

	opts.Logger.WithFields(log.Fields{
		log.FieldKeyQuery: expr.String(),
		"tags":            tags.Slice(),
	}).Debugf("Evaluated tag expression: %t", matched)

	fmt.Fprintln(opts.Writer, strconv.FormatBool(matched))

	if !matched && opts.ExitCode {
		return errors.ErrorWithExitCode{
			Err:      errors.Errorf("tag expression %q does not match", text),
			ExitCode: ExitCodeNoMatch,
		}
	}

	return nil
}

// SplitTags splits comma separated tag lists into a set, dropping blanks.
func SplitTags(values []string) tagexpr.TagSet {
	tags := tagexpr.NewTagSet()

	for _, value := range values {
		for tag := range strings.SplitSeq(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags[tag] = struct{}{}
			}
		}
	}

	return tags
}
