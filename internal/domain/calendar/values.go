package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// numberValue extracts a numeric value from the loosely-typed shapes JSON
// decoding produces: float64, integer types, json.Number, and numeric
// strings (WordPress frequently returns quantities as strings).
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// stringValue extracts a string, tolerating nil and non-string values.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// entityID extracts the numeric ID of an entity payload.
func entityID(entity map[string]any) (int64, bool) {
	n, ok := numberValue(entity["id"])
	if !ok {
		return 0, false
	}
	return int64(n), true
}

// eventReference resolves the event a ticket points at, checking both the
// `event` and `event_id` spellings.
func eventReference(payload map[string]any) (int64, bool) {
	for _, field := range []string{"event", "event_id"} {
		if raw, ok := payload[field]; ok {
			if n, ok := numberValue(raw); ok && n > 0 {
				return int64(n), true
			}
		}
	}
	return 0, false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
