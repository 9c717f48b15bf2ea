package tools

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
)

// stubGateway serves canned entities for tool handler tests.
type stubGateway struct {
	entities map[int64]map[string]any
	listed   map[string]any
	err      error

	lastQuery url.Values
	lastKind  calendar.Kind
}

func (g *stubGateway) GetPost(ctx context.Context, kind calendar.Kind, id int64) (map[string]any, error) {
	g.lastKind = kind
	if g.err != nil {
		return nil, g.err
	}
	entity, ok := g.entities[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return entity, nil
}

func (g *stubGateway) CreatePost(ctx context.Context, kind calendar.Kind, payload map[string]any) (map[string]any, error) {
	g.lastKind = kind
	if g.err != nil {
		return nil, g.err
	}
	created := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		created[k] = v
	}
	created["id"] = float64(101)
	return created, nil
}

func (g *stubGateway) UpdatePost(ctx context.Context, kind calendar.Kind, id int64, payload map[string]any) (map[string]any, error) {
	g.lastKind = kind
	if g.err != nil {
		return nil, g.err
	}
	return map[string]any{"id": float64(id)}, nil
}

func (g *stubGateway) DeletePost(ctx context.Context, kind calendar.Kind, id int64, force bool) (map[string]any, error) {
	g.lastKind = kind
	if g.err != nil {
		return nil, g.err
	}
	return map[string]any{"deleted": true, "id": float64(id)}, nil
}

func (g *stubGateway) ListPosts(ctx context.Context, kind calendar.Kind, query url.Values) (map[string]any, error) {
	g.lastKind = kind
	g.lastQuery = query
	if g.err != nil {
		return nil, g.err
	}
	return g.listed, nil
}

func newTestTools(gw *stubGateway) *Tools {
	service := calendar.NewService(gw)
	return New(service, gw, zerolog.Nop())
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func TestGroupsCoverEveryKind(t *testing.T) {
	groups := newTestTools(&stubGateway{}).Groups()
	require.Len(t, groups, len(calendar.Kinds))

	seen := map[string]bool{}
	for _, group := range groups {
		for _, registered := range []Registered{group.Save, group.Get, group.List, group.Delete} {
			require.NotEmpty(t, registered.Tool.Name)
			require.NotNil(t, registered.Handler)
			require.False(t, seen[registered.Tool.Name], "duplicate tool name %s", registered.Tool.Name)
			seen[registered.Tool.Name] = true
		}
	}
}

func TestSaveEventHandler(t *testing.T) {
	gw := &stubGateway{}
	tools := newTestTools(gw)

	result, err := tools.SaveEventHandler(context.Background(), callRequest(map[string]any{
		"data": map[string]any{
			"title":      "Jazz Night",
			"start_date": "2025-01-01 19:00:00",
			"end_date":   "2025-01-01 23:00:00",
		},
	}))

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, calendar.KindEvent, gw.lastKind)
}

func TestSaveEventHandlerRequiresData(t *testing.T) {
	tools := newTestTools(&stubGateway{})

	result, err := tools.SaveEventHandler(context.Background(), callRequest(nil))

	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestSaveEventHandlerValidationFailure(t *testing.T) {
	gw := &stubGateway{}
	tools := newTestTools(gw)

	// Missing end_date fails locally; the gateway must stay untouched.
	result, err := tools.SaveEventHandler(context.Background(), callRequest(map[string]any{
		"data": map[string]any{"title": "X", "start_date": "2025-01-01 10:00:00"},
	}))

	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Empty(t, gw.lastKind)
}

func TestGetTicketHandler(t *testing.T) {
	gw := &stubGateway{entities: map[int64]map[string]any{
		55: {"id": float64(55), "title": "GA"},
	}}
	tools := newTestTools(gw)

	result, err := tools.GetTicketHandler(context.Background(), callRequest(map[string]any{"id": 55}))

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, calendar.KindTicket, gw.lastKind)
}

func TestGetHandlerRequiresID(t *testing.T) {
	tools := newTestTools(&stubGateway{})

	result, err := tools.GetVenueHandler(context.Background(), callRequest(map[string]any{}))

	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestListEventsHandlerBuildsQuery(t *testing.T) {
	gw := &stubGateway{listed: map[string]any{"events": []any{}}}
	tools := newTestTools(gw)

	result, err := tools.ListEventsHandler(context.Background(), callRequest(map[string]any{
		"search":     "jazz",
		"start_date": "2025-01-01",
		"page":       2,
		"per_page":   25,
	}))

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, "jazz", gw.lastQuery.Get("search"))
	require.Equal(t, "2025-01-01", gw.lastQuery.Get("start_date"))
	require.Equal(t, "2", gw.lastQuery.Get("page"))
	require.Equal(t, "25", gw.lastQuery.Get("per_page"))
}

func TestDeleteOrganizerHandler(t *testing.T) {
	gw := &stubGateway{}
	tools := newTestTools(gw)

	result, err := tools.DeleteOrganizerHandler(context.Background(), callRequest(map[string]any{
		"id":    9,
		"force": true,
	}))

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, calendar.KindOrganizer, gw.lastKind)
}

func TestHandlerReportsGatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("boom")}
	tools := newTestTools(gw)

	result, err := tools.GetEventHandler(context.Background(), callRequest(map[string]any{"id": 1}))

	require.NoError(t, err)
	require.True(t, result.IsError)
}
