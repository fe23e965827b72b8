package ntptime

import (
	"context"
	"log/slog"
	"time"

	"github.com/beevik/ntp"

	"github.com/chronos-mcp/chronos/internal/instrumentation"
	"github.com/chronos-mcp/chronos/internal/logging"
)

const (
	// DefaultServer is the NTP pool queried when no server is given.
	DefaultServer = "pool.ntp.org"

	// DefaultTimeout bounds a single NTP query.
	DefaultTimeout = 5 * time.Second
)

// Result carries the retrieved instant and its origin.
// FromNTP is false when the query failed and the local clock was used;
// downstream consumers append a fallback notice in that case.
type Result struct {
	Time    time.Time
	FromNTP bool
}

// Client queries NTP servers with a bounded timeout and a local-clock
// fallback. A failed query is fully recovered here and never surfaces as
// an error to callers.
type Client struct {
	timeout time.Duration
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// NewClient creates an NTP client. The metrics recorder may be nil.
func NewClient(timeout time.Duration, logger *slog.Logger, metrics *instrumentation.Metrics) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// Now performs a single NTP query against the given server (DefaultServer
// when empty) and returns the server's transmit time in UTC. Any network,
// protocol or validation failure falls back to the local wall clock in UTC
// with FromNTP=false. No retries are attempted; the policy trades accuracy
// for latency predictability.
func (c *Client) Now(ctx context.Context, server string) Result {
	if server == "" {
		server = DefaultServer
	}

	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: c.timeout})
	if err == nil {
		err = resp.Validate()
	}
	if err != nil {
		c.logger.Debug("ntp query failed, using local clock",
			logging.Operation("ntp_query"),
			logging.Server(server),
			logging.Err(err))
		c.metrics.RecordCollaboratorOp(ctx, instrumentation.CollaboratorNTP, instrumentation.ResultFallback)
		return Result{Time: time.Now().UTC(), FromNTP: false}
	}

	c.metrics.RecordCollaboratorOp(ctx, instrumentation.CollaboratorNTP, instrumentation.ResultOK)
	return Result{Time: resp.Time.UTC(), FromNTP: true}
}
