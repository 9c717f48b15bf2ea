// Package tools defines the MCP tool surface: one group of tools per
// calendar entity kind.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
	"github.com/eventwright/calendar-mcp/internal/metrics"
	"github.com/eventwright/calendar-mcp/internal/wordpress"
)

// Tools provides MCP tools for managing calendar entities.
type Tools struct {
	service *calendar.Service
	gateway calendar.Gateway
	logger  zerolog.Logger
}

// New creates a Tools instance around the pipeline service and gateway.
func New(service *calendar.Service, gateway calendar.Gateway, logger zerolog.Logger) *Tools {
	return &Tools{
		service: service,
		gateway: gateway,
		logger:  logger,
	}
}

// Registered pairs a tool definition with its handler.
type Registered struct {
	Tool    mcp.Tool
	Handler mcpserver.ToolHandlerFunc
}

// Group is the full tool set for one entity kind.
type Group struct {
	Kind   calendar.Kind
	Save   Registered
	Get    Registered
	List   Registered
	Delete Registered
}

// Groups returns the tool groups for every entity kind.
func (t *Tools) Groups() []Group {
	return []Group{
		{
			Kind:   calendar.KindEvent,
			Save:   Registered{t.SaveEventTool(), t.SaveEventHandler},
			Get:    Registered{t.GetEventTool(), t.GetEventHandler},
			List:   Registered{t.ListEventsTool(), t.ListEventsHandler},
			Delete: Registered{t.DeleteEventTool(), t.DeleteEventHandler},
		},
		{
			Kind:   calendar.KindVenue,
			Save:   Registered{t.SaveVenueTool(), t.SaveVenueHandler},
			Get:    Registered{t.GetVenueTool(), t.GetVenueHandler},
			List:   Registered{t.ListVenuesTool(), t.ListVenuesHandler},
			Delete: Registered{t.DeleteVenueTool(), t.DeleteVenueHandler},
		},
		{
			Kind:   calendar.KindOrganizer,
			Save:   Registered{t.SaveOrganizerTool(), t.SaveOrganizerHandler},
			Get:    Registered{t.GetOrganizerTool(), t.GetOrganizerHandler},
			List:   Registered{t.ListOrganizersTool(), t.ListOrganizersHandler},
			Delete: Registered{t.DeleteOrganizerTool(), t.DeleteOrganizerHandler},
		},
		{
			Kind:   calendar.KindTicket,
			Save:   Registered{t.SaveTicketTool(), t.SaveTicketHandler},
			Get:    Registered{t.GetTicketTool(), t.GetTicketHandler},
			List:   Registered{t.ListTicketsTool(), t.ListTicketsHandler},
			Delete: Registered{t.DeleteTicketTool(), t.DeleteTicketHandler},
		},
	}
}

// decodeArgs unmarshals tool call arguments into a typed struct.
func decodeArgs(request mcp.CallToolRequest, into any) error {
	if request.Params.Arguments == nil {
		return nil
	}
	data, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}

// toolResultJSON converts a payload to an MCP tool result with JSON content.
func toolResultJSON(payload any) (*mcp.CallToolResult, error) {
	resultJSON, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to build response", err), nil
	}
	return resultJSON, nil
}

// saveArgs is the argument shape shared by every create/update tool.
type saveArgs struct {
	ID   int64          `json:"id"`
	Data map[string]any `json:"data"`
}

func (t *Tools) save(ctx context.Context, tool string, kind calendar.Kind, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t == nil || t.service == nil {
		return mcp.NewToolResultError("calendar service not configured"), nil
	}

	var args saveArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	if len(args.Data) == 0 {
		return mcp.NewToolResultError("data parameter is required"), nil
	}

	result, err := t.service.Save(ctx, calendar.SaveRequest{
		Kind: kind,
		ID:   args.ID,
		Data: args.Data,
	})
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues(tool, "error").Inc()
		return toolError(kind, err), nil
	}

	metrics.ToolCallsTotal.WithLabelValues(tool, "success").Inc()
	return toolResultJSON(map[string]any{
		"summary": result.Summary,
		"entity":  result.Entity,
	})
}

type idArgs struct {
	ID int64 `json:"id"`
}

func (t *Tools) get(ctx context.Context, tool string, kind calendar.Kind, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t == nil || t.gateway == nil {
		return mcp.NewToolResultError("gateway not configured"), nil
	}

	var args idArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	if args.ID <= 0 {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	entity, err := t.gateway.GetPost(ctx, kind, args.ID)
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues(tool, "error").Inc()
		return toolError(kind, err), nil
	}

	metrics.ToolCallsTotal.WithLabelValues(tool, "success").Inc()
	return toolResultJSON(entity)
}

// listArgs is the argument shape shared by every list tool. Date filters
// only apply to events; other kinds ignore them.
type listArgs struct {
	Search    string `json:"search"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
}

func (t *Tools) list(ctx context.Context, tool string, kind calendar.Kind, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t == nil || t.gateway == nil {
		return mcp.NewToolResultError("gateway not configured"), nil
	}

	var args listArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}

	query := url.Values{}
	if args.Search != "" {
		query.Set("search", args.Search)
	}
	if args.StartDate != "" {
		query.Set("start_date", args.StartDate)
	}
	if args.EndDate != "" {
		query.Set("end_date", args.EndDate)
	}
	if args.Page > 0 {
		query.Set("page", strconv.Itoa(args.Page))
	}
	if args.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(args.PerPage))
	}

	result, err := t.gateway.ListPosts(ctx, kind, query)
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues(tool, "error").Inc()
		return toolError(kind, err), nil
	}

	metrics.ToolCallsTotal.WithLabelValues(tool, "success").Inc()
	return toolResultJSON(result)
}

type deleteArgs struct {
	ID    int64 `json:"id"`
	Force bool  `json:"force"`
}

func (t *Tools) delete(ctx context.Context, tool string, kind calendar.Kind, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t == nil || t.gateway == nil {
		return mcp.NewToolResultError("gateway not configured"), nil
	}

	var args deleteArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	if args.ID <= 0 {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	result, err := t.gateway.DeletePost(ctx, kind, args.ID, args.Force)
	if err != nil {
		metrics.ToolCallsTotal.WithLabelValues(tool, "error").Inc()
		return toolError(kind, err), nil
	}

	metrics.ToolCallsTotal.WithLabelValues(tool, "success").Inc()
	return toolResultJSON(result)
}

// toolError maps pipeline and gateway failures onto tool error results,
// keeping the not-found case distinguishable for the agent.
func toolError(kind calendar.Kind, err error) *mcp.CallToolResult {
	if errors.Is(err, wordpress.ErrNotFound) {
		return mcp.NewToolResultErrorf("%s not found", kind)
	}
	return mcp.NewToolResultErrorFromErr("operation failed", err)
}

// saveInputSchema builds the input schema for a create/update tool.
func saveInputSchema(kind calendar.Kind, dataDescription string) mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "integer",
				"description": "ID of an existing " + kind.String() + " to update; omit to create a new one",
			},
			"data": map[string]interface{}{
				"type":        "object",
				"description": dataDescription,
			},
		},
		Required: []string{"data"},
	}
}

// idInputSchema builds the input schema for get/delete tools.
func idInputSchema(kind calendar.Kind, force bool) mcp.ToolInputSchema {
	properties := map[string]interface{}{
		"id": map[string]interface{}{
			"type":        "integer",
			"description": "Numeric ID of the " + kind.String(),
		},
	}
	if force {
		properties["force"] = map[string]interface{}{
			"type":        "boolean",
			"description": "Skip trash and delete permanently",
		}
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   []string{"id"},
	}
}

// listInputSchema builds the input schema for list tools.
func listInputSchema(withDates bool) mcp.ToolInputSchema {
	properties := map[string]interface{}{
		"search": map[string]interface{}{
			"type":        "string",
			"description": "Free-text search filter",
		},
		"page": map[string]interface{}{
			"type":        "integer",
			"description": "Page number (default: 1)",
		},
		"per_page": map[string]interface{}{
			"type":        "integer",
			"description": "Results per page (default: 10)",
		},
	}
	if withDates {
		properties["start_date"] = map[string]interface{}{
			"type":        "string",
			"description": "Only events starting on or after this date (YYYY-MM-DD)",
		}
		properties["end_date"] = map[string]interface{}{
			"type":        "string",
			"description": "Only events starting on or before this date (YYYY-MM-DD)",
		}
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
	}
}
