// Package instrumentation provides OpenTelemetry metrics for the server.
//
// A Provider owns the meter provider and exporter (Prometheus by default,
// stdout for development). The Metrics recorder it hands out is nil-safe:
// recording on a disabled or zero-value recorder is a no-op, so callers
// never need to guard metric calls.
package instrumentation
