package time_tools

import (
	"context"
	"testing"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-mcp/chronos/internal/server"
)

func newTestContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	return sc
}

func TestRegisterTimeToolsStdio(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1", mcpserver.WithToolCapabilities(true))
	sc := newTestContext(t)

	require.NoError(t, RegisterTimeTools(s, sc, TransportStdio))
}

func TestRegisterTimeToolsHTTP(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1", mcpserver.WithToolCapabilities(true))
	sc := newTestContext(t)

	require.NoError(t, RegisterTimeTools(s, sc, TransportHTTP))
}

func TestHostTimeResult(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2025, time.January, 15, 14, 0, 0, 0, warsaw)

	got := hostTimeResult("Current Time:", now)

	assert.Equal(t, "Current Time: 2025-01-15 14:00:00\nDay: Wednesday\nTimezone: CET", got)
}

func TestHostTimeResultServerHeader(t *testing.T) {
	now := time.Date(2025, time.July, 4, 9, 30, 0, 0, time.UTC)

	got := hostTimeResult("Current Server Time:", now)

	assert.Equal(t, "Current Server Time: 2025-07-04 09:30:00\nDay: Friday\nTimezone: UTC", got)
}
