// Package server holds the process-level plumbing around the MCP tools:
// the ServerContext owning the shared collaborators, health endpoints for
// the HTTP transport, and the dedicated Prometheus metrics listener.
package server
