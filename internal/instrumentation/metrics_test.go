package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNoOpMetricsDoNotPanic(t *testing.T) {
	var m *Metrics
	m.RecordToolInvocation(context.Background(), "get_utc", StatusSuccess, time.Second)
	m.RecordCollaboratorOp(context.Background(), CollaboratorNTP, ResultOK)

	zero := &Metrics{}
	zero.RecordToolInvocation(context.Background(), "get_utc", StatusError, time.Second)
	zero.RecordCollaboratorOp(context.Background(), CollaboratorGeocode, ResultNotFound)
}

func TestNewMetrics(t *testing.T) {
	provider := sdkmetric.NewMeterProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, m)

	// Recording must not panic with real instruments either.
	m.RecordToolInvocation(context.Background(), "get_current_time", StatusSuccess, 10*time.Millisecond)
	m.RecordCollaboratorOp(context.Background(), CollaboratorNTP, ResultFallback)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.MetricsExporter = ExporterStdout
	assert.NoError(t, cfg.Validate())

	cfg.MetricsExporter = "otlp"
	assert.Error(t, cfg.Validate())
}

func TestDisabledProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	provider, err := NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())
	assert.NoError(t, provider.Shutdown(context.Background()))
}
