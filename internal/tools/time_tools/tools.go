package time_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/chronos-mcp/chronos/internal/report"
	"github.com/chronos-mcp/chronos/internal/server"
	"github.com/chronos-mcp/chronos/internal/tools/common"
)

// Transport selects which host-clock tool is registered: get_local_time
// for stdio sessions, get_server_time when serving over HTTP.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "streamable-http"
)

// RegisterTimeTools registers all time tools with the MCP server.
func RegisterTimeTools(s *mcpserver.MCPServer, sc *server.ServerContext, transport Transport) error {
	registerCurrentTimeTool(s, sc)
	registerTimeDistanceTool(s, sc)
	registerUTCTool(s, sc)
	registerHostTimeTool(s, sc, transport)
	return nil
}

func registerCurrentTimeTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("get_current_time",
		mcp.WithDescription("Get the current time (NTP-backed), optionally localized to a timezone, city, or country, with optional alternative calendar renderings"),
		mcp.WithTitleAnnotation("Get Current Time"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("calendar",
			mcp.Description("Comma-separated calendar systems to include: unix, isodate, hijri, japanese, persian, hebrew"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name (e.g., 'Europe/Warsaw') or UTC offset (e.g., '+05:30', '-0500')"),
		),
		mcp.WithString("country",
			mcp.Description("Country name to resolve to a timezone (ignored when timezone or city is set)"),
		),
		mcp.WithString("city",
			mcp.Description("City name to resolve to a timezone (ignored when timezone is set)"),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandler("get_current_time", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out := sc.Builder().CurrentTime(ctx, report.CurrentTimeRequest{
			Calendars: common.StringArg(request, "calendar", ""),
			Timezone:  common.StringArg(request, "timezone", ""),
			Country:   common.StringArg(request, "country", ""),
			City:      common.StringArg(request, "city", ""),
		})
		return mcp.NewToolResultText(out), nil
	}))
}

func registerTimeDistanceTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("calculate_time_distance",
		mcp.WithDescription("Calculate the signed distance between two dates or date-times; either endpoint may be the literal 'now'"),
		mcp.WithTitleAnnotation("Calculate Time Distance"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("Start point: 'now', an ISO date ('2025-01-15'), or a date-time ('2025-01-15T14:00:00')"),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("End point: 'now', an ISO date, or a date-time"),
		),
		mcp.WithString("unit",
			mcp.Description("Output unit: auto (default), days, weeks, hours, minutes, seconds"),
		),
		mcp.WithString("timezone",
			mcp.Description("Timezone for interpreting zone-less date values (IANA name or UTC offset)"),
		),
		mcp.WithString("country",
			mcp.Description("Country name to resolve to a timezone (ignored when timezone or city is set)"),
		),
		mcp.WithString("city",
			mcp.Description("City name to resolve to a timezone (ignored when timezone is set)"),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandler("calculate_time_distance", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := sc.Builder().TimeDistance(ctx, report.TimeDistanceRequest{
			From:     common.StringArg(request, "from_date", ""),
			To:       common.StringArg(request, "to_date", ""),
			Unit:     common.StringArg(request, "unit", "auto"),
			Timezone: common.StringArg(request, "timezone", ""),
			Country:  common.StringArg(request, "country", ""),
			City:     common.StringArg(request, "city", ""),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}))
}

func registerUTCTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("get_utc",
		mcp.WithDescription("Get the current UTC time from an NTP server, falling back to the host clock"),
		mcp.WithTitleAnnotation("Get UTC Time"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("server",
			mcp.Description("NTP server address (default: the configured pool)"),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandler("get_utc", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out := sc.Builder().UTCTime(ctx, common.StringArg(request, "server", ""))
		return mcp.NewToolResultText(out), nil
	}))
}

func registerHostTimeTool(s *mcpserver.MCPServer, sc *server.ServerContext, transport Transport) {
	name, header := "get_local_time", "Current Time:"
	if transport == TransportHTTP {
		name, header = "get_server_time", "Current Server Time:"
	}

	tool := mcp.NewTool(name,
		mcp.WithDescription("Get the host's wall-clock time in its local timezone (no network query)"),
		mcp.WithTitleAnnotation("Get Host Time"),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, common.InstrumentedToolHandler(name, sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(hostTimeResult(header, time.Now())), nil
	}))
}

// hostTimeResult formats a host-clock reading with its weekday and the
// platform zone name.
func hostTimeResult(header string, now time.Time) string {
	zone, _ := now.Zone()
	return fmt.Sprintf("%s %s\nDay: %s\nTimezone: %s",
		header, now.Format("2006-01-02 15:04:05"), now.Weekday(), zone)
}
