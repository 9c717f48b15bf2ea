package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventwright/calendar-mcp/internal/metrics"
)

func TestMetricsEndpointExposed(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := withMetrics(inner)

	metrics.ToolCallsTotal.WithLabelValues("get_event", "success").Inc()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "calendar_mcp_tool_calls_total")

	// Everything else still reaches the transport handler.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoadTransportConfigDefaults(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")

	cfg, err := LoadTransportConfig()

	require.NoError(t, err)
	require.Equal(t, TransportStdio, cfg.Type)
	require.Equal(t, DefaultPort, cfg.Port)
	require.Equal(t, "0.0.0.0", cfg.Host)
}

func TestLoadTransportConfigRejectsUnknown(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := LoadTransportConfig()
	require.ErrorContains(t, err, "invalid MCP_TRANSPORT")
}
