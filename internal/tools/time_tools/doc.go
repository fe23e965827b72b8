// Package time_tools registers the time, calendar, and location MCP tools.
package time_tools
