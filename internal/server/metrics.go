package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chronos-mcp/chronos/internal/instrumentation"
)

const (
	// DefaultMetricsAddr is the default bind address for the metrics server.
	DefaultMetricsAddr = ":9090"

	metricsReadTimeout  = 10 * time.Second
	metricsWriteTimeout = 10 * time.Second
	metricsIdleTimeout  = 60 * time.Second
)

// MetricsServerConfig configures the dedicated metrics listener.
type MetricsServerConfig struct {
	// Addr is the bind address, e.g. ":9090".
	Addr string

	// InstrumentationProvider supplies the prometheus-exported meter.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves Prometheus metrics on its own port, kept separate
// from the MCP traffic port.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
	logger     *slog.Logger
}

// NewMetricsServer creates the metrics server. It requires an enabled
// instrumentation provider; without one there is nothing to scrape.
func NewMetricsServer(config MetricsServerConfig, logger *slog.Logger) (*MetricsServer, error) {
	if config.Addr == "" {
		config.Addr = DefaultMetricsAddr
	}
	if config.InstrumentationProvider == nil {
		return nil, fmt.Errorf("instrumentation provider is required for metrics server")
	}
	if !config.InstrumentationProvider.Enabled() {
		return nil, fmt.Errorf("instrumentation provider is not enabled")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MetricsServer{
		addr:   config.Addr,
		logger: logger,
	}, nil
}

func (s *MetricsServer) buildServer() *http.Server {
	mux := http.NewServeMux()

	// The otel prometheus exporter registers with the default registry,
	// which promhttp.Handler exposes.
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadTimeout,
		WriteTimeout:      metricsWriteTimeout,
		IdleTimeout:       metricsIdleTimeout,
	}
}

// Start serves /metrics until Shutdown. It blocks; run it in a goroutine
// for non-blocking operation.
func (s *MetricsServer) Start() error {
	s.httpServer = s.buildServer()
	s.logger.Info("starting metrics server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// StartWithReadySignal is like Start but closes ready once the listener
// is bound, so callers can fail fast on bind errors.
func (s *MetricsServer) StartWithReadySignal(ready chan<- struct{}) error {
	s.httpServer = s.buildServer()

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.logger.Info("starting metrics server", "addr", s.addr)
	close(ready)
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Info("shutting down metrics server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured bind address.
func (s *MetricsServer) Addr() string {
	return s.addr
}
