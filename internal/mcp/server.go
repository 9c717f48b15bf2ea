// Package mcp wires the calendar pipeline into an MCP (Model Context
// Protocol) server with selectable transports.
package mcp

import (
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
	"github.com/eventwright/calendar-mcp/internal/mcp/tools"
)

// Server wraps the MCP server with the calendar service and gateway.
type Server struct {
	mcp     *mcpserver.MCPServer
	service *calendar.Service
	gateway calendar.Gateway
	logger  zerolog.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	Name    string
	Version string
}

// NewServer creates an MCP server exposing the calendar management tools.
func NewServer(cfg Config, service *calendar.Service, gateway calendar.Gateway, logger zerolog.Logger) *Server {
	mcpServer := mcpserver.NewMCPServer(
		cfg.Name,
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions("Manage events, venues, organizers, and tickets on a WordPress calendar site. Dates accept natural language (\"next monday 7pm\") and are normalized to YYYY-MM-DD HH:MM:SS."),
	)

	srv := &Server{
		mcp:     mcpServer,
		service: service,
		gateway: gateway,
		logger:  logger,
	}
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server for use with transports.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// registerTools registers the per-kind tool groups: a create/update tool
// plus get/list/delete pass-throughs for each entity kind.
func (s *Server) registerTools() {
	calendarTools := tools.New(s.service, s.gateway, s.logger)

	for _, group := range calendarTools.Groups() {
		s.mcp.AddTool(group.Save.Tool, group.Save.Handler)
		s.mcp.AddTool(group.Get.Tool, group.Get.Handler)
		s.mcp.AddTool(group.List.Tool, group.List.Handler)
		s.mcp.AddTool(group.Delete.Tool, group.Delete.Handler)
	}
}
