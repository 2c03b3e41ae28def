package telemetry

// Options configures trace and metric collection.
type Options struct {
	// TraceExporter is one of none, console, otlpHttp, otlpGrpc or http.
	TraceExporter                 string
	TraceExporterHTTPEndpoint     string
	TraceParent                   string
	TraceExporterInsecureEndpoint bool

	// MetricExporter is one of none, console, otlpHttp or grpcHttp.
	MetricExporter                 string
	MetricExporterInsecureEndpoint bool
}
