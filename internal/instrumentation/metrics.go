package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrTool         = "tool"
	attrStatus       = "status"
	attrCollaborator = "collaborator"
	attrResult       = "result"
)

// Status values for tool invocation metrics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collaborator names for the external-dependency counter.
const (
	CollaboratorNTP     = "ntp"
	CollaboratorGeocode = "geocode"
)

// Results for the external-dependency counter.
const (
	ResultOK       = "ok"
	ResultFallback = "fallback"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder.
type Metrics struct {
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
	collaboratorOpsTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	m.collaboratorOpsTotal, err = meter.Int64Counter(
		"collaborator_operations_total",
		metric.WithDescription("Total number of operations against external collaborators (NTP, geocoding)"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collaborator_operations_total counter: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records a single MCP tool invocation.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, status string, duration time.Duration) {
	if m == nil || m.toolInvocationsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	)
	m.toolInvocationsTotal.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(attrTool, tool),
	))
}

// RecordCollaboratorOp records the outcome of one external collaborator call.
func (m *Metrics) RecordCollaboratorOp(ctx context.Context, collaborator, result string) {
	if m == nil || m.collaboratorOpsTotal == nil {
		return
	}
	m.collaboratorOpsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrCollaborator, collaborator),
		attribute.String(attrResult, result),
	))
}
