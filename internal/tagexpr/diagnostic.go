package tagexpr

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

// FormatDiagnostic produces a Rust-style error message from a ParseError.
// origin names where the expression came from, e.g. "--include[1]"; it may be empty.
func FormatDiagnostic(err *ParseError, origin string, useColor bool) string {
	var sb strings.Builder

	style := func(text, color string) string {
		if !useColor {
			return text
		}

		return ansi.Color(text, color)
	}

	fmt.Fprintf(&sb, "Tag expression parsing error: %s\n", err.Title())

	arrow := style(" --> ", "blue+b")
	if origin != "" {
		fmt.Fprintf(&sb, "%s%s '%s'\n", arrow, origin, err.Query)
	} else {
		fmt.Fprintf(&sb, "%s'%s'\n", arrow, err.Query)
	}

	sb.WriteString("\n")

	indent := "     "
	fmt.Fprintf(&sb, "%s%s\n", indent, err.Query)

	position := max(err.Position, 0)
	fmt.Fprintf(&sb, "%s%s%s %s\n", indent, strings.Repeat(" ", position), style("^", "red+b"), err.Message)

	if hint := GetHint(err.Code, err.TokenLiteral); hint != "" {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s %s\n", style("hint:", "cyan+b"), hint)
	}

	return sb.String()
}
