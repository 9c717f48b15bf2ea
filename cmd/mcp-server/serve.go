package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eventwright/calendar-mcp/internal/config"
	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
	"github.com/eventwright/calendar-mcp/internal/mcp"
	"github.com/eventwright/calendar-mcp/internal/metrics"
	"github.com/eventwright/calendar-mcp/internal/wordpress"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	// Under stdio transport stdout carries protocol messages; the logger
	// writes to stderr only.
	logger := config.NewLogger(cfg.Logging)

	transportCfg, err := mcp.LoadTransportConfig()
	if err != nil {
		return fmt.Errorf("failed to load transport config: %w", err)
	}

	metrics.Init(version, commit, buildDate)

	logger.Info().
		Str("transport", string(transportCfg.Type)).
		Str("wordpress", cfg.WordPress.Redacted()).
		Str("environment", cfg.Environment).
		Msg("starting calendar MCP server")

	clientOpts := []wordpress.Option{
		wordpress.WithTimeout(cfg.WordPress.RequestTimeout),
		wordpress.WithRateLimit(cfg.WordPress.RateLimitPerSec),
	}
	if cfg.WordPress.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification disabled")
		clientOpts = append(clientOpts, wordpress.WithInsecureSkipVerify())
	}
	gateway := wordpress.NewClient(
		cfg.WordPress.BaseURL,
		cfg.WordPress.Username,
		cfg.WordPress.AppPassword,
		clientOpts...,
	)

	service := calendar.NewService(gateway, calendar.WithLogger(logger))

	mcpServer := mcp.NewServer(
		mcp.Config{
			Name:    "WordPress Calendar MCP Server",
			Version: version,
		},
		service,
		gateway,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := mcp.Serve(ctx, mcpServer.MCPServer(), transportCfg, logger); err != nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	logger.Info().Msg("initiating graceful shutdown")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	select {
	case <-shutdownCtx.Done():
		logger.Warn().Msg("shutdown timeout exceeded")
		return fmt.Errorf("shutdown timeout exceeded")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn().Err(err).Msg("server error during shutdown")
		}
	}

	logger.Info().Msg("shutdown complete")
	return nil
}
