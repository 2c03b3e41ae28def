package tagfilter

import (
	"context"

	"github.com/gruntwork-io/tagexpr/internal/telemetry"
)

// Telemetry operation names.
const (
	TelemetryOpParse          = "tagexpr_parse"
	TelemetryOpFilterEvaluate = "tagexpr_filter_evaluate"
	TelemetryOpConfigLoad     = "tagexpr_config_load"
)

// Telemetry attribute keys.
const (
	AttrQuery           = "tagexpr.query"
	AttrExpressionCount = "tagexpr.expression_count"
	AttrItemCount       = "item.count"
	AttrResultCount     = "result.count"
	AttrConfigPath      = "config.path"
)

// TraceParse wraps expression parsing with telemetry.
func TraceParse(ctx context.Context, query string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpParse, map[string]any{
		AttrQuery: query,
	}, fn)
}

// TraceFilterEvaluate wraps filter evaluation with telemetry.
func TraceFilterEvaluate(ctx context.Context, expressionCount, itemCount int, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterEvaluate, map[string]any{
		AttrExpressionCount: expressionCount,
		AttrItemCount:       itemCount,
	}, fn)
}

// recordResultCount attaches the number of selected items to the active span.
func recordResultCount(ctx context.Context, count int) {
	telemetry.SetAttributes(ctx, map[string]any{AttrResultCount: count})
}

// TraceConfigLoad wraps loading of a config file with telemetry.
func TraceConfigLoad(ctx context.Context, path string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpConfigLoad, map[string]any{
		AttrConfigPath: path,
	}, fn)
}
