package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
)

// SaveVenueTool returns the tool definition for creating or updating a venue.
func (t *Tools) SaveVenueTool() mcp.Tool {
	return mcp.Tool{
		Name: "create_update_venue",
		Description: "Create or update a venue. Creation requires a title (or venue name — " +
			"the two are kept in sync automatically).",
		InputSchema: saveInputSchema(calendar.KindVenue,
			"Venue fields: title (or venue), address, city, country, province, zip, phone, website, status"),
	}
}

// SaveVenueHandler handles the create_update_venue tool call.
func (t *Tools) SaveVenueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.save(ctx, "create_update_venue", calendar.KindVenue, request)
}

// GetVenueTool returns the tool definition for fetching a single venue.
func (t *Tools) GetVenueTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_venue",
		Description: "Get detailed information about a specific venue by its numeric ID.",
		InputSchema: idInputSchema(calendar.KindVenue, false),
	}
}

// GetVenueHandler handles the get_venue tool call.
func (t *Tools) GetVenueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.get(ctx, "get_venue", calendar.KindVenue, request)
}

// ListVenuesTool returns the tool definition for listing venues.
func (t *Tools) ListVenuesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_venues",
		Description: "List venues with optional search and pagination filters.",
		InputSchema: listInputSchema(false),
	}
}

// ListVenuesHandler handles the list_venues tool call.
func (t *Tools) ListVenuesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.list(ctx, "list_venues", calendar.KindVenue, request)
}

// DeleteVenueTool returns the tool definition for deleting a venue.
func (t *Tools) DeleteVenueTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_venue",
		Description: "Delete a venue by its numeric ID. Moves to trash unless force is set.",
		InputSchema: idInputSchema(calendar.KindVenue, true),
	}
}

// DeleteVenueHandler handles the delete_venue tool call.
func (t *Tools) DeleteVenueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.delete(ctx, "delete_venue", calendar.KindVenue, request)
}
