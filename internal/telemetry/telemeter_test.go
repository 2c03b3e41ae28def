package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectWithoutExporters(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	tlm, err := telemetry.NewTelemeter(ctx, "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{})
	require.NoError(t, err)

	called := false
	err = tlm.Collect(ctx, "noop", map[string]any{"count": 1}, func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	require.NoError(t, tlm.Shutdown(ctx))
}

func TestCollectFromEmptyContext(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	expected := errors.New("failed")

	err := telemetry.TelemeterFromContext(ctx).Collect(ctx, "op", nil, func(context.Context) error {
		return expected
	})
	require.ErrorIs(t, err, expected)

	telemetry.TelemeterFromContext(ctx).Count(ctx, "op", 1)
}

func TestConsoleTraceExporter(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var buf bytes.Buffer

	tlm, err := telemetry.NewTelemeter(ctx, "tagexpr", "test", &buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)

	ctx = telemetry.ContextWithTelemeter(ctx, tlm)

	var traceParent string

	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "tagexpr_parse", map[string]any{"tagexpr.query": "a & b"}, func(ctx context.Context) error {
		traceParent = telemetry.TraceParent(ctx)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, tlm.Shutdown(ctx))

	assert.Contains(t, buf.String(), "tagexpr_parse")
	assert.Contains(t, buf.String(), "tagexpr.query")
	assert.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`, traceParent)
}

func TestTraceParentPropagation(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	const parent = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"

	tlm, err := telemetry.NewTelemeter(ctx, "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{
		TraceExporter: "console",
		TraceParent:   parent,
	})
	require.NoError(t, err)

	var traceParent string

	err = tlm.Collect(ctx, "child", nil, func(ctx context.Context) error {
		traceParent = telemetry.TraceParent(ctx)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, tlm.Shutdown(ctx))

	assert.Contains(t, traceParent, "0af7651916cd43dd8448eb211c80319c")
}

func TestUnsupportedExporters(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	_, err := telemetry.NewTelemeter(ctx, "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{TraceExporter: "carrier-pigeon"})
	require.Error(t, err)

	_, err = telemetry.NewTelemeter(ctx, "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{MetricExporter: "carrier-pigeon"})
	require.Error(t, err)

	_, err = telemetry.NewTelemeter(ctx, "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{TraceExporter: "http"})

	var missingErr *telemetry.ErrorMissingEnvVariable

	require.ErrorAs(t, err, &missingErr)
}

func TestInvalidTraceParent(t *testing.T) {
	t.Parallel()

	_, err := telemetry.NewTelemeter(t.Context(), "tagexpr", "test", &bytes.Buffer{}, &telemetry.Options{
		TraceExporter: "console",
		TraceParent:   "not-a-trace-parent",
	})
	require.Error(t, err)
}

func TestCleanMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"tag_expression_cache_hit": "tag_expression_cache_hit",
		"tagexpr parse  duration":  "tagexpr_parse_duration",
		"__a:b__":                  "a_b",
		"path/to.metric-name":      "path/to.metric-name",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, telemetry.CleanMetricName(input), input)
	}
}
