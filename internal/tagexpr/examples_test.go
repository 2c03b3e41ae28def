package tagexpr_test

import (
	"fmt"

	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
)

func Example() {
	expr := tagexpr.MustCompile("(fast | api) & !flaky")

	fmt.Println(expr)
	fmt.Println(tagexpr.Matches(expr, "api", "db"))
	fmt.Println(tagexpr.Matches(expr, "fast", "flaky"))
	// Output:
	// ((fast | api) & !flaky)
	// true
	// false
}

func ExampleParse() {
	result := tagexpr.Parse("a & b c")
	if !result.IsSuccess() {
		fmt.Println(result.ErrorMessage())
	}
	// Output: missing operator between b <4> and c <6>
}

func ExampleTokenize() {
	for _, token := range tagexpr.Tokenize("!(a| b)") {
		fmt.Printf("%d %q\n", token.Position, token.Literal)
	}
	// Output:
	// 0 "!"
	// 1 "("
	// 2 "a"
	// 3 "|"
	// 4 " b"
	// 6 ")"
}

func ExampleTags() {
	fmt.Println(tagexpr.Tags(tagexpr.MustCompile("db & !(api | db) | none()")))
	// Output: [api db]
}

func ExampleFormatDiagnostic() {
	result := tagexpr.Parse("fast & (api")

	fmt.Print(tagexpr.FormatDiagnostic(result.Err(), "", false))
	// Output:
	// Tag expression parsing error: Unbalanced parentheses
	//  --> 'fast & (api'
	//
	//      fast & (api
	//             ^ ( at <7> missing closing parenthesis
	//
	//   hint: Every '(' needs a matching ')'. e.g. '(fast | api) & !slow'
}
