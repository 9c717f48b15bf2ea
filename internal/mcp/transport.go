package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/eventwright/calendar-mcp/internal/metrics"
)

// TransportType represents the available MCP transport protocols.
type TransportType string

const (
	// TransportStdio uses standard input/output for MCP communication.
	// Best for: Claude Desktop, CLI tools, local development.
	TransportStdio TransportType = "stdio"

	// TransportSSE uses Server-Sent Events for MCP communication.
	TransportSSE TransportType = "sse"

	// TransportHTTP uses Streamable HTTP for MCP communication.
	TransportHTTP TransportType = "http"
)

const (
	// DefaultTransport is used when MCP_TRANSPORT is not set.
	DefaultTransport = TransportStdio

	// DefaultPort is used when PORT is not set for HTTP/SSE transports.
	DefaultPort = 8080

	// GracefulShutdownTimeout is the maximum time to wait for in-flight
	// requests during shutdown.
	GracefulShutdownTimeout = 30 * time.Second
)

// TransportConfig holds configuration for MCP transport selection.
type TransportConfig struct {
	// Type specifies which transport to use (stdio, sse, http).
	Type TransportType

	// Port is the HTTP port for SSE and HTTP transports (ignored for stdio).
	Port int

	// Host is the bind address for SSE and HTTP transports.
	Host string
}

// LoadTransportConfig reads transport configuration from environment variables:
//   - MCP_TRANSPORT: "stdio", "sse", or "http" (default: "stdio")
//   - PORT: HTTP port for SSE/HTTP transports (default: 8080)
//   - HOST: Bind address for SSE/HTTP transports (default: "0.0.0.0")
func LoadTransportConfig() (*TransportConfig, error) {
	cfg := &TransportConfig{
		Type: DefaultTransport,
		Port: DefaultPort,
		Host: "0.0.0.0",
	}

	if transportEnv := os.Getenv("MCP_TRANSPORT"); transportEnv != "" {
		transport := TransportType(transportEnv)
		switch transport {
		case TransportStdio, TransportSSE, TransportHTTP:
			cfg.Type = transport
		default:
			return nil, fmt.Errorf("invalid MCP_TRANSPORT value: %s (must be stdio, sse, or http)", transportEnv)
		}
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %s (must be a number)", portEnv)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT value: %d (must be between 1 and 65535)", port)
		}
		cfg.Port = port
	}

	if hostEnv := os.Getenv("HOST"); hostEnv != "" {
		cfg.Host = hostEnv
	}

	return cfg, nil
}

// ServeStdio starts the MCP server using stdio transport. The server reads
// requests from stdin and writes responses to stdout; all logging must go
// to stderr.
func ServeStdio(ctx context.Context, mcpServer *server.MCPServer, logger zerolog.Logger) error {
	logger.Info().Msg("starting MCP server with stdio transport")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ServeStdio(mcpServer); err != nil {
			errCh <- fmt.Errorf("stdio server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("context cancelled, stdio server stopping")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// ServeSSE starts the MCP server using Server-Sent Events transport.
func ServeSSE(ctx context.Context, mcpServer *server.MCPServer, cfg *TransportConfig, logger zerolog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info().Str("transport", "sse").Str("addr", addr).Msg("starting MCP server")

	sseServer := server.NewSSEServer(mcpServer)
	return serveHTTPListener(ctx, addr, sseServer, logger)
}

// ServeHTTP starts the MCP server using Streamable HTTP transport.
func ServeHTTP(ctx context.Context, mcpServer *server.MCPServer, cfg *TransportConfig, logger zerolog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info().Str("transport", "http").Str("addr", addr).Msg("starting MCP server")

	httpTransport := server.NewStreamableHTTPServer(mcpServer)
	return serveHTTPListener(ctx, addr, httpTransport, logger)
}

// Serve starts the MCP server with the configured transport.
func Serve(ctx context.Context, mcpServer *server.MCPServer, cfg *TransportConfig, logger zerolog.Logger) error {
	switch cfg.Type {
	case TransportStdio:
		return ServeStdio(ctx, mcpServer, logger)
	case TransportSSE:
		return ServeSSE(ctx, mcpServer, cfg, logger)
	case TransportHTTP:
		return ServeHTTP(ctx, mcpServer, cfg, logger)
	default:
		return fmt.Errorf("unsupported transport type: %s", cfg.Type)
	}
}

// withMetrics mounts the Prometheus registry at /metrics alongside the
// transport handler. Only the network transports get this; under stdio
// there is no listener to expose it on.
func withMetrics(handler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/", handler)
	return mux
}

func serveHTTPListener(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: withMetrics(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
		close(errCh)
	}()

	logger.Info().Str("addr", addr).Msg("server listening")

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("error during graceful shutdown")
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info().Msg("server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}
