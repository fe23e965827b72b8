package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-mcp/chronos/internal/server"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestInstrumentedToolHandlerPassesThrough(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	called := false
	wrapped := InstrumentedToolHandler("test_tool", sc, func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	})

	result, err := wrapped(context.Background(), newRequest(nil))

	require.NoError(t, err)
	assert.True(t, called)
	assert.False(t, result.IsError)
}

func TestInstrumentedToolHandlerPropagatesError(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	wantErr := errors.New("boom")
	wrapped := InstrumentedToolHandler("test_tool", sc, func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	})

	_, err = wrapped(context.Background(), newRequest(nil))
	assert.ErrorIs(t, err, wantErr)
}

func TestStringArg(t *testing.T) {
	req := newRequest(map[string]any{
		"timezone": "Europe/Warsaw",
		"empty":    "",
		"number":   42,
	})

	assert.Equal(t, "Europe/Warsaw", StringArg(req, "timezone", "UTC"))
	assert.Equal(t, "UTC", StringArg(req, "empty", "UTC"))
	assert.Equal(t, "UTC", StringArg(req, "number", "UTC"))
	assert.Equal(t, "UTC", StringArg(req, "missing", "UTC"))
}
