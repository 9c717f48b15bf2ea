package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSchemaTitleRequired(t *testing.T) {
	for _, kind := range Kinds {
		payload := map[string]any{"event_id": 7, "start_date": "2025-01-01 10:00:00", "end_date": "2025-01-02 10:00:00"}
		err := validateSchema(kind, payload, true)

		var verr ValidationError
		require.ErrorAs(t, err, &verr, "kind %s", kind)
		require.Equal(t, "title", verr.Field)
	}
}

func TestValidateSchemaEventDatesRequired(t *testing.T) {
	err := validateSchema(KindEvent, map[string]any{"title": "X", "start_date": "2025-01-01 10:00:00"}, true)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "end_date", verr.Field)
}

func TestValidateSchemaTicketNeedsEvent(t *testing.T) {
	err := validateSchema(KindTicket, map[string]any{"title": "GA"}, true)
	require.ErrorContains(t, err, "tickets must be associated with an event")
}

func TestValidateSchemaTicketDatePatterns(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{
			name:    "malformed end_date",
			payload: map[string]any{"title": "GA", "event_id": 7, "end_date": "July 15th"},
			field:   "end_date",
		},
		{
			name:    "datetime in sale price bound",
			payload: map[string]any{"title": "GA", "event_id": 7, "sale_price_end_date": "2024-07-01 10:00:00"},
			field:   "sale_price_end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSchema(KindTicket, tt.payload, true)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateSchemaStatusDefault(t *testing.T) {
	payload := map[string]any{"title": "X", "start_date": "2025-01-01 10:00:00", "end_date": "2025-01-02 10:00:00"}
	require.NoError(t, validateSchema(KindEvent, payload, true))
	require.Equal(t, "publish", payload["status"])

	// A caller-chosen status is preserved.
	payload = map[string]any{"title": "X", "status": "draft", "start_date": "2025-01-01 10:00:00", "end_date": "2025-01-02 10:00:00"}
	require.NoError(t, validateSchema(KindEvent, payload, true))
	require.Equal(t, "draft", payload["status"])

	// Updates never inject a status.
	payload = map[string]any{"title": "X"}
	require.NoError(t, validateSchema(KindEvent, payload, false))
	require.NotContains(t, payload, "status")
}
