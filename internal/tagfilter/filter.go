package tagfilter

import (
	"context"
	"fmt"
	"slices"

	"github.com/gobwas/glob"
	"github.com/gruntwork-io/tagexpr/internal/cache"
	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/gruntwork-io/tagexpr/pkg/log"
	"golang.org/x/sync/errgroup"
)

const expressionCacheName = "tag_expression"

type expressionCacheKey struct{}

// ContextWithExpressionCache returns a copy of ctx carrying a fresh compiled expression cache.
func ContextWithExpressionCache(ctx context.Context) context.Context {
	return cache.ContextWithCache(ctx, expressionCacheKey{}, cache.NewCache[tagexpr.Expression](expressionCacheName))
}

// ExpressionCache returns the compiled expression cache carried by ctx.
func ExpressionCache(ctx context.Context) *cache.Cache[tagexpr.Expression] {
	return cache.ContextCache[tagexpr.Expression](ctx, expressionCacheKey{})
}

// Expression is a compiled include or exclude expression.
type Expression struct {
	expr   tagexpr.Expression
	Origin string
	Query  string
}

// String returns the canonical form of the expression.
func (e Expression) String() string {
	return e.expr.String()
}

// Matches reports whether the expression matches tags.
func (e Expression) Matches(tags tagexpr.TagSet) bool {
	return tagexpr.Evaluate(e.expr, tags)
}

// Filter selects items by include and exclude tag expressions and an optional name glob.
type Filter struct {
	logger      log.Logger
	namePattern glob.Glob
	pattern     string
	includes    []Expression
	excludes    []Expression
}

// Option configures a Filter.
type Option func(*Filter) error

// WithNamePattern restricts the filter to items whose name matches the glob pattern.
// '/' separates path segments, so '*' stays within one segment and '**' crosses them.
func WithNamePattern(pattern string) Option {
	return func(f *Filter) error {
		if pattern == "" {
			return nil
		}

		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return errors.Errorf("invalid name pattern %q: %w", pattern, err)
		}

		f.namePattern = compiled
		f.pattern = pattern

		return nil
	}
}

// WithLogger sets the logger used by the filter.
func WithLogger(logger log.Logger) Option {
	return func(f *Filter) error {
		f.logger = logger
		return nil
	}
}

// New compiles includes and excludes into a Filter.
// Parse failures of every expression are collected into a single *errors.MultiError
// whose entries are ExpressionError values.
func New(ctx context.Context, includes, excludes []string, opts ...Option) (*Filter, error) {
	f := &Filter{logger: log.LoggerFromContext(ctx)}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	var errs *errors.MultiError

	f.includes, errs = compileAll(ctx, "--include", includes, errs)
	f.excludes, errs = compileAll(ctx, "--exclude", excludes, errs)

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	f.logger.Debugf("Compiled tag filter with %d include and %d exclude expressions", len(f.includes), len(f.excludes))

	return f, nil
}

func compileAll(ctx context.Context, flag string, queries []string, errs *errors.MultiError) ([]Expression, *errors.MultiError) {
	expressions := make([]Expression, 0, len(queries))

	for i, query := range queries {
		origin := fmt.Sprintf("%s[%d]", flag, i)

		expr, err := compile(ctx, query)
		if err != nil {
			var parseErr *tagexpr.ParseError
			if errors.As(err, &parseErr) {
				err = ExpressionError{Origin: origin, Err: parseErr}
			}

			errs = errs.Append(err)

			continue
		}

		expressions = append(expressions, Expression{Origin: origin, Query: query, expr: expr})
	}

	return expressions, errs
}

// compile parses query once per expression cache.
func compile(ctx context.Context, query string) (tagexpr.Expression, error) {
	return ExpressionCache(ctx).GetOrCompute(ctx, query, func() (tagexpr.Expression, error) {
		var expr tagexpr.Expression

		err := TraceParse(ctx, query, func(_ context.Context) error {
			var err error

			expr, err = tagexpr.Compile(query)

			return err
		})

		return expr, err
	})
}

// Includes returns the compiled include expressions.
func (f *Filter) Includes() []Expression {
	return f.includes
}

// Excludes returns the compiled exclude expressions.
func (f *Filter) Excludes() []Expression {
	return f.excludes
}

// Matches reports whether the filter selects item.
func (f *Filter) Matches(item Item) bool {
	if f.namePattern != nil && !f.namePattern.Match(item.Name) {
		return false
	}

	tags := item.TagSet()

	matches := func(e Expression) bool { return e.Matches(tags) }

	if len(f.includes) > 0 && !slices.ContainsFunc(f.includes, matches) {
		return false
	}

	return !slices.ContainsFunc(f.excludes, matches)
}

// Evaluate returns the items selected by the filter, in input order.
func (f *Filter) Evaluate(ctx context.Context, items []Item) ([]Item, error) {
	var selected []Item

	err := TraceFilterEvaluate(ctx, len(f.includes)+len(f.excludes), len(items), func(ctx context.Context) error {
		var (
			matched []bool
			err     error
		)

		if shouldUseParallelization(len(items)) {
			matched, err = f.matchParallel(ctx, items)
		} else {
			matched = f.matchSerial(items)
		}

		if err != nil {
			return err
		}

		selected = make([]Item, 0, len(items))

		for i, item := range items {
			if matched[i] {
				selected = append(selected, item)
			}
		}

		recordResultCount(ctx, len(selected))

		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Debugf("Tag filter selected %d of %d items", len(selected), len(items))

	return selected, nil
}

func (f *Filter) matchSerial(items []Item) []bool {
	matched := make([]bool, len(items))

	for i, item := range items {
		matched[i] = f.Matches(item)
	}

	return matched
}

// matchParallel splits items into one contiguous chunk per worker.
func (f *Filter) matchParallel(ctx context.Context, items []Item) ([]bool, error) {
	matched := make([]bool, len(items))
	workers := WorkerPoolSize()
	chunkSize := (len(items) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				matched[i] = f.Matches(items[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.New(err)
	}

	return matched, nil
}

// Match is the outcome of a single expression for an item.
type Match struct {
	Origin  string `json:"origin"`
	Query   string `json:"query"`
	Matched bool   `json:"matched"`
}

// Explanation describes why an item is or is not selected.
type Explanation struct {
	Item        Item    `json:"item"`
	Includes    []Match `json:"includes"`
	Excludes    []Match `json:"excludes"`
	NameMatched bool    `json:"name_matched"`
	Selected    bool    `json:"selected"`
}

// Explain evaluates every expression of the filter against item.
func (f *Filter) Explain(item Item) Explanation {
	tags := item.TagSet()

	explain := func(expressions []Expression) []Match {
		matches := make([]Match, len(expressions))
		for i, e := range expressions {
			matches[i] = Match{Origin: e.Origin, Query: e.Query, Matched: e.Matches(tags)}
		}

		return matches
	}

	return Explanation{
		Item:        item,
		Includes:    explain(f.includes),
		Excludes:    explain(f.excludes),
		NameMatched: f.namePattern == nil || f.namePattern.Match(item.Name),
		Selected:    f.Matches(item),
	}
}

// String renders the filter in canonical form.
func (f *Filter) String() string {
	render := func(expressions []Expression) []string {
		out := make([]string, len(expressions))
		for i, e := range expressions {
			out[i] = e.String()
		}

		return out
	}

	return fmt.Sprintf("include=%v exclude=%v name=%q", render(f.includes), render(f.excludes), f.pattern)
}
