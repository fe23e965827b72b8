package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chronos-mcp/chronos/internal/config"
	"github.com/chronos-mcp/chronos/internal/geocode"
	"github.com/chronos-mcp/chronos/internal/instrumentation"
	"github.com/chronos-mcp/chronos/internal/location"
	"github.com/chronos-mcp/chronos/internal/ntptime"
	"github.com/chronos-mcp/chronos/internal/report"
	"github.com/chronos-mcp/chronos/internal/tzindex"
)

// ServerContext owns the shared collaborators behind the MCP tools: the
// NTP clock, the location resolver, and the report builder composed from
// them. All of them are stateless and shared across concurrent tool calls.
type ServerContext struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     *config.Config
	logger  *slog.Logger
	metrics *instrumentation.Metrics

	clock    *ntptime.Client
	resolver *location.Resolver
	builder  *report.Builder

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext wires the collaborators from configuration. The
// geospatial timezone index handle is the process-wide shared one.
func NewServerContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *instrumentation.Metrics) (*ServerContext, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	clock := ntptime.NewClient(cfg.NTPTimeout(), logger, metrics)
	geocoder := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent, cfg.GeocodeTimeout(), logger, metrics)
	resolver := location.NewResolver(geocoder, tzindex.Shared(), logger)
	builder := report.NewBuilder(clock, resolver, cfg.NTPServer, logger)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		resolver: resolver,
		builder:  builder,
	}, nil
}

// Context returns the server lifetime context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the active configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Logger returns the shared logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the shared metrics instruments, possibly nil when
// instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// Clock returns the NTP-backed time source.
func (sc *ServerContext) Clock() *ntptime.Client {
	return sc.clock
}

// Resolver returns the location resolver.
func (sc *ServerContext) Resolver() *location.Resolver {
	return sc.resolver
}

// Builder returns the report builder.
func (sc *ServerContext) Builder() *report.Builder {
	return sc.builder
}

// IsShutdown returns whether Shutdown has been called.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the server lifetime context. Safe to call repeatedly.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
