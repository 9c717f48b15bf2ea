package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapTicketEndDateSkipsWhenNotNeeded(t *testing.T) {
	gw := &fakeGateway{
		events: map[int64]map[string]any{
			7: {"id": float64(7), "start_date": "2024-07-15 18:00:00"},
		},
	}
	svc := newTestService(gw)

	tests := []struct {
		name    string
		created map[string]any
	}{
		{
			name:    "end date already at event start",
			created: map[string]any{"id": float64(1), "event_id": float64(7), "end_date": "2024-07-15 18:00:00"},
		},
		{
			name:    "end date before event start",
			created: map[string]any{"id": float64(1), "event_id": float64(7), "end_date": "2024-07-10 00:00:00"},
		},
		{
			name:    "no end date on created ticket",
			created: map[string]any{"id": float64(1), "event_id": float64(7)},
		},
		{
			name:    "no event association on created ticket",
			created: map[string]any{"id": float64(1), "end_date": "2024-07-20 00:00:00"},
		},
		{
			name:    "no ticket id in creation result",
			created: map[string]any{"event_id": float64(7), "end_date": "2024-07-20 00:00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updatesBefore := gw.updateCalls
			got := svc.capTicketEndDate(context.Background(), tt.created, false)
			require.Equal(t, tt.created, got)
			require.Equal(t, updatesBefore, gw.updateCalls)
		})
	}
}

func TestCapTicketEndDateExplicitEndWins(t *testing.T) {
	gw := &fakeGateway{}
	svc := newTestService(gw)

	created := map[string]any{"id": float64(1), "event_id": float64(7), "end_date": "2024-09-01 00:00:00"}
	got := svc.capTicketEndDate(context.Background(), created, true)

	require.Equal(t, created, got)
	require.Zero(t, gw.getCalls, "an explicit end date needs no event lookup")
}

func TestCapTicketEndDateUnparseable(t *testing.T) {
	gw := &fakeGateway{
		events: map[int64]map[string]any{
			7: {"id": float64(7), "start_date": "sometime in july"},
		},
	}
	svc := newTestService(gw)

	created := map[string]any{"id": float64(1), "event_id": float64(7), "end_date": "2024-07-20 00:00:00"}
	got := svc.capTicketEndDate(context.Background(), created, false)

	require.Equal(t, created, got, "unparseable dates abort capping without error")
	require.Zero(t, gw.updateCalls)
}
