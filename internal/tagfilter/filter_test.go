package tagfilter_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/gruntwork-io/tagexpr/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItems = []tagfilter.Item{
	tagfilter.NewItem("api/users", "fast", "api"),
	tagfilter.NewItem("api/orders", "slow", "api"),
	tagfilter.NewItem("db/migrate", "slow", "db"),
	tagfilter.NewItem("ui/login", "fast", "ui", "flaky"),
	tagfilter.NewItem("untagged"),
}

func TestFilterEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		includes []string
		excludes []string
		pattern  string
		expected []string
	}{
		{
			name:     "no expressions selects everything",
			expected: []string{"api/users", "api/orders", "db/migrate", "ui/login", "untagged"},
		},
		{
			name:     "single include",
			includes: []string{"fast"},
			expected: []string{"api/users", "ui/login"},
		},
		{
			name:     "conjunction inside one expression",
			includes: []string{"fast & api"},
			expected: []string{"api/users"},
		},
		{
			name:     "multiple includes are unioned",
			includes: []string{"db", "ui"},
			expected: []string{"db/migrate", "ui/login"},
		},
		{
			name:     "exclude only",
			excludes: []string{"slow"},
			expected: []string{"api/users", "ui/login", "untagged"},
		},
		{
			name:     "include and exclude",
			includes: []string{"fast | api"},
			excludes: []string{"flaky"},
			expected: []string{"api/users", "api/orders"},
		},
		{
			name:     "none selects untagged items",
			includes: []string{"none()"},
			expected: []string{"untagged"},
		},
		{
			name:     "any selects tagged items",
			includes: []string{"any()"},
			excludes: []string{"api"},
			expected: []string{"db/migrate", "ui/login"},
		},
		{
			name:     "name pattern narrows selection",
			includes: []string{"slow"},
			pattern:  "api/*",
			expected: []string{"api/orders"},
		},
		{
			name:     "double star crosses segments",
			pattern:  "**/login",
			expected: []string{"ui/login"},
		},
		{
			name:     "tags are case sensitive",
			includes: []string{"FAST"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()

			f, err := tagfilter.New(ctx, tt.includes, tt.excludes, tagfilter.WithNamePattern(tt.pattern))
			require.NoError(t, err)

			selected, err := f.Evaluate(ctx, testItems)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, tagfilter.Items(selected).Names())
		})
	}
}

func TestNewCollectsExpressionErrors(t *testing.T) {
	t.Parallel()

	_, err := tagfilter.New(t.Context(), []string{"a &", "fast"}, []string{"(b"})
	require.Error(t, err)

	errs := errors.UnwrapMultiErrors(err)
	require.Len(t, errs, 2)

	expected := []struct {
		origin  string
		message string
		code    tagexpr.ErrorCode
	}{
		{origin: "--include[0]", message: "& at <2> missing rhs operand", code: tagexpr.ErrorCodeMissingOperand},
		{origin: "--exclude[0]", message: "( at <0> missing closing parenthesis", code: tagexpr.ErrorCodeMissingClosingParenthesis},
	}

	for i, want := range expected {
		var exprErr tagfilter.ExpressionError

		require.ErrorAs(t, errs[i], &exprErr)
		assert.Equal(t, want.origin, exprErr.Origin)
		assert.Equal(t, want.message, exprErr.Err.Message)
		assert.Equal(t, want.code, exprErr.Err.Code)
	}
}

func TestNewInvalidNamePattern(t *testing.T) {
	t.Parallel()

	_, err := tagfilter.New(t.Context(), nil, nil, tagfilter.WithNamePattern("api/["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name pattern")
}

func TestFilterExpressionsAreCanonical(t *testing.T) {
	t.Parallel()

	f, err := tagfilter.New(t.Context(), []string{"a & b | !c"}, []string{"ANY()"})
	require.NoError(t, err)

	require.Len(t, f.Includes(), 1)
	require.Len(t, f.Excludes(), 1)

	assert.Equal(t, "((a & b) | !c)", f.Includes()[0].String())
	assert.Equal(t, "--include[0]", f.Includes()[0].Origin)
	assert.Equal(t, "any()", f.Excludes()[0].String())
	assert.Equal(t, `include=[((a & b) | !c)] exclude=[any()] name=""`, f.String())
}

func TestFilterExplain(t *testing.T) {
	t.Parallel()

	f, err := tagfilter.New(t.Context(), []string{"db", "fast"}, []string{"flaky"}, tagfilter.WithNamePattern("ui/*"))
	require.NoError(t, err)

	explanation := f.Explain(tagfilter.NewItem("ui/login", "fast", "ui", "flaky"))

	assert.Equal(t, []tagfilter.Match{
		{Origin: "--include[0]", Query: "db", Matched: false},
		{Origin: "--include[1]", Query: "fast", Matched: true},
	}, explanation.Includes)
	assert.Equal(t, []tagfilter.Match{
		{Origin: "--exclude[0]", Query: "flaky", Matched: true},
	}, explanation.Excludes)
	assert.True(t, explanation.NameMatched)
	assert.False(t, explanation.Selected)
}

func TestExpressionCacheReusesCompiledExpressions(t *testing.T) {
	t.Parallel()

	ctx := tagfilter.ContextWithExpressionCache(t.Context())

	for range 3 {
		_, err := tagfilter.New(ctx, []string{"fast & api", "slow"}, []string{"fast & api"})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, tagfilter.ExpressionCache(ctx).Len())
}

func TestExpressionCacheSkipsInvalidExpressions(t *testing.T) {
	t.Parallel()

	ctx := tagfilter.ContextWithExpressionCache(t.Context())

	_, err := tagfilter.New(ctx, []string{"a b"}, nil)
	require.Error(t, err)

	assert.Equal(t, 0, tagfilter.ExpressionCache(ctx).Len())
}

func TestFilterEvaluateRecordsResultCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tlm, err := telemetry.NewTelemeter(t.Context(), "tagexpr", "test", &buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)

	ctx := telemetry.ContextWithTelemeter(t.Context(), tlm)

	f, err := tagfilter.New(ctx, []string{"fast"}, nil)
	require.NoError(t, err)

	selected, err := f.Evaluate(ctx, testItems)
	require.NoError(t, err)
	require.Len(t, selected, 2)

	require.NoError(t, tlm.Shutdown(ctx))

	assert.Contains(t, buf.String(), tagfilter.TelemetryOpFilterEvaluate)
	assert.Regexp(t, `"Key":\s*"result\.count",\s*"Value":\s*\{\s*"Type":\s*"INT64",\s*"Value":\s*2\s*\}`, buf.String())
}

func largeItemSet(size int) []tagfilter.Item {
	items := make([]tagfilter.Item, size)

	for i := range items {
		tags := []string{fmt.Sprintf("shard%d", i%7)}
		if i%3 == 0 {
			tags = append(tags, "fast")
		}

		items[i] = tagfilter.NewItem(fmt.Sprintf("item/%d", i), tags...)
	}

	return items
}

func TestFilterEvaluateParallelPreservesOrder(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	items := largeItemSet(tagfilter.ParallelThreshold + 1234)

	f, err := tagfilter.New(ctx, []string{"fast & !shard0", "shard3"}, nil)
	require.NoError(t, err)

	selected, err := f.Evaluate(ctx, items)
	require.NoError(t, err)

	expected := make([]tagfilter.Item, 0, len(items))

	for _, item := range items {
		if f.Matches(item) {
			expected = append(expected, item)
		}
	}

	assert.Equal(t, expected, selected)
}

func TestFilterEvaluateParallelCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	f, err := tagfilter.New(ctx, []string{"fast"}, nil)
	require.NoError(t, err)

	_, err = f.Evaluate(ctx, largeItemSet(tagfilter.ParallelThreshold))
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkFilterEvaluate(b *testing.B) {
	ctx := b.Context()
	items := largeItemSet(1000)

	f, err := tagfilter.New(ctx, []string{"fast & !shard0", "shard3 | shard4"}, []string{"shard6"})
	require.NoError(b, err)

	for b.Loop() {
		_, _ = f.Evaluate(ctx, items)
	}
}
