package cli

import (
	"github.com/gruntwork-io/tagexpr/options"
	"github.com/urfave/cli/v2"
)

const (
	LogLevelFlagName  = "log-level"
	LogFormatFlagName = "log-format"
	NoColorFlagName   = "no-color"

	TelemetryTraceExporterFlagName                 = "telemetry-trace-exporter"
	TelemetryTraceExporterHTTPEndpointFlagName     = "telemetry-trace-exporter-http-endpoint"
	TelemetryTraceExporterInsecureEndpointFlagName = "telemetry-trace-exporter-insecure-endpoint"
	TelemetryMetricExporterFlagName                = "telemetry-metric-exporter"
	TelemetryMetricExporterInsecureFlagName        = "telemetry-metric-exporter-insecure-endpoint"
)

// NewGlobalFlags returns the flags shared by every command.
func NewGlobalFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlagName,
			EnvVars: []string{options.EnvVar(LogLevelFlagName)},
			Usage:   "Sets the logging level: error, warn, info, debug or trace.",
			Value:   opts.LogLevel.String(),
		},
		&cli.StringFlag{
			Name:        LogFormatFlagName,
			EnvVars:     []string{options.EnvVar(LogFormatFlagName)},
			Usage:       "Sets the log format: text or json.",
			Value:       opts.LogFormat,
			Destination: &opts.LogFormat,
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     []string{options.EnvVar(NoColorFlagName), "NO_COLOR"},
			Usage:       "Disables coloured logs and diagnostics.",
			Destination: &opts.NoColor,
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     []string{options.EnvVar(TelemetryTraceExporterFlagName)},
			Usage:       "Trace exporter: none, console, otlpHttp, otlpGrpc or http.",
			Value:       opts.Telemetry.TraceExporter,
			Destination: &opts.Telemetry.TraceExporter,
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterHTTPEndpointFlagName,
			EnvVars:     []string{options.EnvVar(TelemetryTraceExporterHTTPEndpointFlagName)},
			Usage:       "Endpoint of the http trace exporter.",
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
		},
		&cli.BoolFlag{
			Name:        TelemetryTraceExporterInsecureEndpointFlagName,
			EnvVars:     []string{options.EnvVar(TelemetryTraceExporterInsecureEndpointFlagName)},
			Usage:       "Sends traces over an insecure connection.",
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     []string{options.EnvVar(TelemetryMetricExporterFlagName)},
			Usage:       "Metric exporter: none, console, otlpHttp or grpcHttp.",
			Value:       opts.Telemetry.MetricExporter,
			Destination: &opts.Telemetry.MetricExporter,
		},
		&cli.BoolFlag{
			Name:        TelemetryMetricExporterInsecureFlagName,
			EnvVars:     []string{options.EnvVar(TelemetryMetricExporterInsecureFlagName)},
			Usage:       "Sends metrics over an insecure connection.",
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
		},
	}
}
