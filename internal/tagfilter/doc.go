// Package tagfilter selects labelled items with tag expressions.
//
// A Filter holds include and exclude expressions compiled by the tagexpr
// package. An item is selected when:
//  1. no include expressions are given, or at least one of them matches its tags
//  2. none of the exclude expressions matches its tags
//  3. its name matches the name pattern, when one is set
//
// Multiple include expressions are therefore unioned, whereas a single
// expression such as "fast & api" intersects.
//
//	f, err := tagfilter.New(ctx, []string{"fast & !slow"}, []string{"flaky"})
//	if err != nil {
//	    return err
//	}
//
//	selected, err := f.Evaluate(ctx, items)
//
// Items and default expressions can be loaded from an HCL, YAML or JSON file
// with LoadConfigFile.
//
// Compiled expressions are memoized per query text in a cache carried by the
// context (see ContextWithExpressionCache), so filters created repeatedly from
// the same queries parse each of them once.
package tagfilter
