package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chronos-mcp/chronos/internal/instrumentation"
	"github.com/chronos-mcp/chronos/internal/logging"
	"github.com/chronos-mcp/chronos/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with invocation metrics and
// debug logging.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
		}
		sc.Logger().Debug("tool invocation",
			logging.Tool(toolName),
			logging.Status(status),
			logging.Duration(duration))

		return result, err
	}
}

// StringArg extracts a string argument from the request, returning def
// when the argument is absent or not a string.
func StringArg(request mcp.CallToolRequest, key, def string) string {
	args := request.GetArguments()
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}
