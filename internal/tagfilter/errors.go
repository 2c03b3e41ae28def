package tagfilter

import (
	"fmt"

	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
)

// ExpressionError is a parse failure of one of the filter expressions.
type ExpressionError struct {
	Err *tagexpr.ParseError
	// Origin names the expression, e.g. "--include[0]".
	Origin string
}

func (e ExpressionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Origin, e.Err.Error())
}

func (e ExpressionError) Unwrap() error {
	return e.Err
}

// UnsupportedFileFormatError is returned for config files with an unknown extension.
type UnsupportedFileFormatError struct {
	Path string
}

func (e UnsupportedFileFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q, expected one of .hcl, .yaml, .yml, .json", e.Path)
}

// InvalidItemError describes an invalid item in a config file.
type InvalidItemError struct {
	Item   string
	Reason string
}

func (e InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item %q: %s", e.Item, e.Reason)
}
