package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/chronos-mcp/chronos/internal/config"
	"github.com/chronos-mcp/chronos/internal/instrumentation"
	"github.com/chronos-mcp/chronos/internal/logging"
	"github.com/chronos-mcp/chronos/internal/server"
	"github.com/chronos-mcp/chronos/internal/tools/time_tools"
)

// serveOptions collects the serve command's flag values.
type serveOptions struct {
	debugMode      bool
	transport      string
	httpAddr       string
	configPath     string
	ntpServer      string
	metricsEnabled bool
	metricsAddr    string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing time, timezone,
and calendar tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Over stdio the server registers get_local_time; over HTTP it registers
get_server_time instead, reporting the deployment host's clock.

Configuration:
  An optional YAML config file (--config) sets the NTP pool, the geocoder
  endpoint, and listen addresses. Flags override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&opts.httpAddr, "http-addr", "", "HTTP server address (for streamable-http transport). Can also use MCP_HTTP_ADDR env var.")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the YAML config file. Created with defaults when missing. Can also use CHRONOS_CONFIG env var.")
	cmd.Flags().StringVar(&opts.ntpServer, "ntp-server", "", "NTP server queried for the current time. Can also use NTP_SERVER env var.")
	cmd.Flags().BoolVar(&opts.metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// loadServeEnvVars applies environment fallbacks for flags the user did
// not set explicitly.
func loadServeEnvVars(cmd *cobra.Command, opts *serveOptions) {
	if !cmd.Flags().Changed("config") && opts.configPath == "" {
		opts.configPath = os.Getenv("CHRONOS_CONFIG")
	}
	if !cmd.Flags().Changed("ntp-server") && opts.ntpServer == "" {
		opts.ntpServer = os.Getenv("NTP_SERVER")
	}
	if !cmd.Flags().Changed("http-addr") && opts.httpAddr == "" {
		opts.httpAddr = os.Getenv("MCP_HTTP_ADDR")
	}
	if !cmd.Flags().Changed("metrics-addr") && opts.metricsAddr == "" {
		opts.metricsAddr = os.Getenv("METRICS_ADDR")
	}
	if !cmd.Flags().Changed("metrics-enabled") {
		if v := os.Getenv("METRICS_ENABLED"); v == "false" {
			opts.metricsEnabled = false
		}
	}
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loadServeEnvVars(cmd, &opts)

	logger := logging.NewLogger(opts.debugMode)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file.
	if opts.ntpServer != "" {
		cfg.NTPServer = opts.ntpServer
	}
	if opts.httpAddr != "" {
		cfg.HTTPAddr = opts.httpAddr
	}
	if opts.metricsAddr != "" {
		cfg.MetricsAddr = opts.metricsAddr
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil && opts.transport != "stdio" {
			logger.Error("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if opts.transport != "stdio" && opts.metricsEnabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			InstrumentationProvider: provider,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && !errors.Is(err, http.ErrServerClosed) {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	var metrics *instrumentation.Metrics
	if provider.Enabled() {
		metrics = provider.Metrics()
	}

	serverContext, err := server.NewServerContext(shutdownCtx, cfg, logger, metrics)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", logging.Err(err))
			}
		}
		if err := serverContext.Shutdown(); err != nil && opts.transport != "stdio" {
			logger.Error("server context shutdown failed", logging.Err(err))
		}
	}()

	mcpSrv := mcpserver.NewMCPServer("chronos", version,
		mcpserver.WithToolCapabilities(true),
	)

	transport := time_tools.Transport(opts.transport)
	if err := time_tools.RegisterTimeTools(mcpSrv, serverContext, transport); err != nil {
		return fmt.Errorf("failed to register time tools: %w", err)
	}

	switch opts.transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, cfg.HTTPAddr, logger)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", opts.transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, addr string, logger *slog.Logger) error {
	httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
		mcpserver.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpServer)

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("starting streamable HTTP server",
		"addr", addr,
		"mcp_endpoint", "/mcp",
		"health_endpoints", "/healthz, /readyz")

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")
		healthChecker.SetReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
	}

	logger.Info("HTTP server gracefully stopped")
	return nil
}
