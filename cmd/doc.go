// Package cmd implements the chronos command line interface: the serve
// command hosting the MCP server over stdio or streamable HTTP, and the
// version command.
package cmd
