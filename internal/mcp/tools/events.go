package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
)

// SaveEventTool returns the tool definition for creating or updating an event.
func (t *Tools) SaveEventTool() mcp.Tool {
	return mcp.Tool{
		Name: "create_update_event",
		Description: "Create or update a calendar event. Creation requires title, start_date, and end_date. " +
			"Dates accept natural language (\"next friday 8pm\"), ISO-8601, or YYYY-MM-DD HH:MM:SS.",
		InputSchema: saveInputSchema(calendar.KindEvent,
			"Event fields: title, description, start_date, end_date, start_date_utc, end_date_utc, venue, organizer, website, cost, status"),
	}
}

// SaveEventHandler handles the create_update_event tool call.
func (t *Tools) SaveEventHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.save(ctx, "create_update_event", calendar.KindEvent, request)
}

// GetEventTool returns the tool definition for fetching a single event.
func (t *Tools) GetEventTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_event",
		Description: "Get detailed information about a specific event by its numeric ID.",
		InputSchema: idInputSchema(calendar.KindEvent, false),
	}
}

// GetEventHandler handles the get_event tool call.
func (t *Tools) GetEventHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.get(ctx, "get_event", calendar.KindEvent, request)
}

// ListEventsTool returns the tool definition for listing events.
func (t *Tools) ListEventsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_events",
		Description: "List events with optional search, date range, and pagination filters.",
		InputSchema: listInputSchema(true),
	}
}

// ListEventsHandler handles the list_events tool call.
func (t *Tools) ListEventsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.list(ctx, "list_events", calendar.KindEvent, request)
}

// DeleteEventTool returns the tool definition for deleting an event.
func (t *Tools) DeleteEventTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_event",
		Description: "Delete an event by its numeric ID. Moves to trash unless force is set.",
		InputSchema: idInputSchema(calendar.KindEvent, true),
	}
}

// DeleteEventHandler handles the delete_event tool call.
func (t *Tools) DeleteEventHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.delete(ctx, "delete_event", calendar.KindEvent, request)
}
