// Package options provides a set of options that configure the behavior of the tagexpr program.
package options

import (
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/go-commons/env"
	"github.com/gruntwork-io/tagexpr/internal/telemetry"
	"github.com/gruntwork-io/tagexpr/pkg/log"
)

const (
	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "TAGEXPR_"

	// OutputFormatText prints one item name per line.
	OutputFormatText = "text"

	// OutputFormatJSON prints the selected items as a JSON array.
	OutputFormatJSON = "json"

	// LogFormatText is the human readable log format.
	LogFormatText = "text"

	// LogFormatJSON is the structured log format.
	LogFormatJSON = "json"

	defaultLogLevel = log.InfoLevel
)

// Options represents options that configure the behavior of the tagexpr program.
type Options struct {
	// Logger is the logger commands write to; it is rebuilt from LogLevel and LogFormat before every run.
	Logger log.Logger

	// Writer is where command output goes.
	Writer io.Writer

	// ErrWriter is where logs and diagnostics go.
	ErrWriter io.Writer

	Telemetry *telemetry.Options

	LogLevel  log.Level
	LogFormat string

	// NoColor disables coloured diagnostics even when ErrWriter is a terminal.
	NoColor bool
}

// NewOptions returns Options with defaults.
func NewOptions() *Options {
	return &Options{
		Logger:    log.New(log.WithLevel(defaultLogLevel), log.WithOutput(os.Stderr)),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		LogLevel:  defaultLogLevel,
		LogFormat: LogFormatText,
		Telemetry: &telemetry.Options{
			TraceExporter:  "none",
			MetricExporter: "none",
			TraceParent:    env.GetString(os.Getenv("TRACEPARENT"), ""),
		},
	}
}

// EnvVar returns the environment variable name for a flag name, e.g. "log-level" -> "TAGEXPR_LOG_LEVEL".
func EnvVar(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
