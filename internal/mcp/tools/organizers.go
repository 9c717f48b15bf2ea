package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
)

// SaveOrganizerTool returns the tool definition for creating or updating an organizer.
func (t *Tools) SaveOrganizerTool() mcp.Tool {
	return mcp.Tool{
		Name: "create_update_organizer",
		Description: "Create or update an organizer. Creation requires a title (or organizer name — " +
			"the two are kept in sync automatically).",
		InputSchema: saveInputSchema(calendar.KindOrganizer,
			"Organizer fields: title (or organizer), phone, website, email, status"),
	}
}

// SaveOrganizerHandler handles the create_update_organizer tool call.
func (t *Tools) SaveOrganizerHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.save(ctx, "create_update_organizer", calendar.KindOrganizer, request)
}

// GetOrganizerTool returns the tool definition for fetching a single organizer.
func (t *Tools) GetOrganizerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_organizer",
		Description: "Get detailed information about a specific organizer by its numeric ID.",
		InputSchema: idInputSchema(calendar.KindOrganizer, false),
	}
}

// GetOrganizerHandler handles the get_organizer tool call.
func (t *Tools) GetOrganizerHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.get(ctx, "get_organizer", calendar.KindOrganizer, request)
}

// ListOrganizersTool returns the tool definition for listing organizers.
func (t *Tools) ListOrganizersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_organizers",
		Description: "List organizers with optional search and pagination filters.",
		InputSchema: listInputSchema(false),
	}
}

// ListOrganizersHandler handles the list_organizers tool call.
func (t *Tools) ListOrganizersHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.list(ctx, "list_organizers", calendar.KindOrganizer, request)
}

// DeleteOrganizerTool returns the tool definition for deleting an organizer.
func (t *Tools) DeleteOrganizerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_organizer",
		Description: "Delete an organizer by its numeric ID. Moves to trash unless force is set.",
		InputSchema: idInputSchema(calendar.KindOrganizer, true),
	}
}

// DeleteOrganizerHandler handles the delete_organizer tool call.
func (t *Tools) DeleteOrganizerHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.delete(ctx, "delete_organizer", calendar.KindOrganizer, request)
}
