package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-mcp/chronos/internal/instrumentation"
)

func newTestServerContext(t *testing.T) *ServerContext {
	t.Helper()
	sc, err := NewServerContext(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	return sc
}

func TestNewServerContextDefaults(t *testing.T) {
	sc := newTestServerContext(t)

	assert.NotNil(t, sc.Config())
	assert.NotNil(t, sc.Logger())
	assert.NotNil(t, sc.Clock())
	assert.NotNil(t, sc.Resolver())
	assert.NotNil(t, sc.Builder())
	assert.Nil(t, sc.Metrics())
	assert.False(t, sc.IsShutdown())
}

func TestServerContextShutdown(t *testing.T) {
	sc := newTestServerContext(t)

	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())
	assert.Error(t, sc.Context().Err())

	// Repeated shutdown is a no-op.
	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())
}

func TestLivenessHandler(t *testing.T) {
	h := NewHealthChecker(nil)

	rec := httptest.NewRecorder()
	h.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
}

func TestReadinessHandler(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		h := NewHealthChecker(nil)

		rec := httptest.NewRecorder()
		h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["ready"])
		assert.Equal(t, "ok", resp.Checks["shutdown"])
	})

	t.Run("not ready", func(t *testing.T) {
		h := NewHealthChecker(nil)
		h.SetReady(false)

		rec := httptest.NewRecorder()
		h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not ready", resp.Status)
		assert.Equal(t, "not ready", resp.Checks["ready"])
	})

	t.Run("shutting down", func(t *testing.T) {
		sc := newTestServerContext(t)
		h := NewHealthChecker(sc)
		require.NoError(t, sc.Shutdown())

		rec := httptest.NewRecorder()
		h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "shutting down", resp.Checks["shutdown"])
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	h := NewHealthChecker(nil)
	mux := http.NewServeMux()
	h.RegisterHealthEndpoints(mux)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewMetricsServerRequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider is required")
}

func TestNewMetricsServerRequiresEnabledProvider(t *testing.T) {
	cfg := instrumentation.DefaultConfig()
	cfg.Enabled = false
	provider, err := instrumentation.NewProvider(context.Background(), cfg)
	require.NoError(t, err)

	_, err = NewMetricsServer(MetricsServerConfig{InstrumentationProvider: provider}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestMetricsServerDefaultAddr(t *testing.T) {
	cfg := instrumentation.DefaultConfig()
	cfg.Enabled = true
	cfg.MetricsExporter = instrumentation.ExporterStdout
	provider, err := instrumentation.NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	s, err := NewMetricsServer(MetricsServerConfig{InstrumentationProvider: provider}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMetricsAddr, s.Addr())
}
