package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
)

// SaveTicketTool returns the tool definition for creating or updating a ticket.
func (t *Tools) SaveTicketTool() mcp.Tool {
	return mcp.Tool{
		Name: "create_update_ticket",
		Description: "Create or update a ticket. Creation requires a title and an associated event " +
			"(event or event_id). The sale window defaults to opening seven days before the event " +
			"and closing at the event start; stock and capacity mirror each other when only one is given; " +
			"manage_stock=false makes the ticket unlimited; omit price for a free ticket.",
		InputSchema: saveInputSchema(calendar.KindTicket,
			"Ticket fields: title, event (or event_id), price, sale_price, sale_price_start_date, "+
				"sale_price_end_date, start_date, end_date, stock, capacity, manage_stock, stock_mode, provider, description"),
	}
}

// SaveTicketHandler handles the create_update_ticket tool call.
func (t *Tools) SaveTicketHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.save(ctx, "create_update_ticket", calendar.KindTicket, request)
}

// GetTicketTool returns the tool definition for fetching a single ticket.
func (t *Tools) GetTicketTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_ticket",
		Description: "Get detailed information about a specific ticket by its numeric ID.",
		InputSchema: idInputSchema(calendar.KindTicket, false),
	}
}

// GetTicketHandler handles the get_ticket tool call.
func (t *Tools) GetTicketHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.get(ctx, "get_ticket", calendar.KindTicket, request)
}

// ListTicketsTool returns the tool definition for listing tickets.
func (t *Tools) ListTicketsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_tickets",
		Description: "List tickets with optional search and pagination filters.",
		InputSchema: listInputSchema(false),
	}
}

// ListTicketsHandler handles the list_tickets tool call.
func (t *Tools) ListTicketsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.list(ctx, "list_tickets", calendar.KindTicket, request)
}

// DeleteTicketTool returns the tool definition for deleting a ticket.
func (t *Tools) DeleteTicketTool() mcp.Tool {
	return mcp.Tool{
		Name:        "delete_ticket",
		Description: "Delete a ticket by its numeric ID. Moves to trash unless force is set.",
		InputSchema: idInputSchema(calendar.KindTicket, true),
	}
}

// DeleteTicketHandler handles the delete_ticket tool call.
func (t *Tools) DeleteTicketHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.delete(ctx, "delete_ticket", calendar.KindTicket, request)
}
