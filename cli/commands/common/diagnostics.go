// Package common holds helpers shared by the tagexpr commands.
package common

import (
	"io"
	"os"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/mattn/go-isatty"
)

// ExitCodeParseError is the exit code used when an expression cannot be parsed.
const ExitCodeParseError = 1

// UseColor reports whether diagnostics written to opts.ErrWriter should be coloured.
func UseColor(opts *options.Options) bool {
	if opts.NoColor {
		return false
	}

	file, ok := opts.ErrWriter.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ReportParseErrors writes a diagnostic for every parse error found in err and
// returns how many were written. Other errors are ignored.
func ReportParseErrors(w io.Writer, err error, useColor bool) int {
	reported := 0

	for _, err := range errors.UnwrapMultiErrors(err) {
		var (
			exprErr  tagfilter.ExpressionError
			parseErr *tagexpr.ParseError
		)

		switch {
		case errors.As(err, &exprErr):
			_, _ = io.WriteString(w, tagexpr.FormatDiagnostic(exprErr.Err, exprErr.Origin, useColor))
		case errors.As(err, &parseErr):
			_, _ = io.WriteString(w, tagexpr.FormatDiagnostic(parseErr, "", useColor))
		default:
			continue
		}

		reported++
	}

	return reported
}

// ParseFailure returns the error a command exits with after reporting parse errors.
func ParseFailure(failed, total int) error {
	return errors.ErrorWithExitCode{
		Err:      errors.Errorf("%d of %d tag expressions failed to parse", failed, total),
		ExitCode: ExitCodeParseError,
	}
}
