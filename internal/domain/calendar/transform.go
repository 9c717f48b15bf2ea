package calendar

import (
	"github.com/microcosm-cc/bluemonday"
)

// defaultTicketProvider is used when a ticket creation omits the provider.
const defaultTicketProvider = "Tickets Commerce"

// htmlPolicy strips markup the backend would reject from rich-text fields.
var htmlPolicy = bluemonday.UGCPolicy()

// htmlFields may carry caller-supplied HTML and are sanitized before dispatch.
var htmlFields = []string{"description", "excerpt"}

// transformState carries a request's working payload together with the
// per-request flags later pipeline stages need. The flags replace the
// synthetic marker keys a payload-only design would require.
type transformState struct {
	payload map[string]any

	// explicitEndDate records whether the caller's raw input contained an
	// end_date key, before any defaulting. The post-create compensator
	// respects an explicit choice but caps a computed default.
	explicitEndDate bool

	// unlimitedStock is set when the caller disabled stock management;
	// it suppresses the rest of inventory enforcement for the request.
	unlimitedStock bool

	// invalidDates lists every date field that failed normalization.
	invalidDates []InvalidDate
}

// transformEntity applies the kind-specific field rules and the date
// normalization pass to a fresh copy of the raw input. The raw input map is
// never mutated.
func transformEntity(kind Kind, data map[string]any, creating bool, parser NaturalParser) *transformState {
	payload := make(map[string]any, len(data))
	for k, v := range data {
		payload[k] = v
	}

	_, explicitEnd := data["end_date"]
	st := &transformState{
		payload:         payload,
		explicitEndDate: explicitEnd,
	}

	for _, field := range htmlFields {
		if s, ok := stringValue(payload[field]); ok {
			payload[field] = htmlPolicy.Sanitize(s)
		}
	}

	switch kind {
	case KindVenue, KindOrganizer:
		mirrorTitle(kind, payload)
	case KindTicket:
		transformTicket(st, creating)
	}

	st.invalidDates = normalizeDates(parser, payload)
	return st
}

// mirrorTitle keeps `title` and the kind-named field (`venue`/`organizer`)
// in sync: whichever one the caller supplied is copied into the other.
// Title wins when both are present.
func mirrorTitle(kind Kind, payload map[string]any) {
	named := string(kind)
	if title, ok := payload["title"]; ok {
		payload[named] = title
		return
	}
	if name, ok := payload[named]; ok {
		payload["title"] = name
	}
}

// transformTicket applies ticket aliasing, price cleanup, and the inventory
// reconciliation rules.
func transformTicket(st *transformState, creating bool) {
	payload := st.payload

	// The caller may address the event as either `event` or `event_id`.
	if _, ok := payload["event"]; !ok {
		if id, ok := payload["event_id"]; ok {
			payload["event"] = id
		}
	}

	// The backend treats an absent price as "free" and an explicit zero as
	// invalid input, so zero prices are stripped rather than sent.
	for _, field := range []string{"price", "sale_price"} {
		if n, ok := numberValue(payload[field]); ok && n == 0 {
			delete(payload, field)
		}
	}

	if creating {
		reconcileInventory(st)
		if _, ok := payload["provider"]; !ok {
			payload["provider"] = defaultTicketProvider
		}
	}

	// The outbound payload always uses the field name the gateway expects.
	if event, ok := payload["event"]; ok {
		payload["event_id"] = event
	}
}

// reconcileInventory resolves the stock/capacity/manage_stock tri-state into
// a consistent shape:
//
//  1. a missing stock or capacity mirrors the other when one is a valid number
//  2. manage_stock=false marks the ticket unlimited: stock_mode becomes
//     "unlimited" and manage_stock is dropped (the gateway has no field for it)
//  3. otherwise capacity is raised to cover stock, and supplying either
//     quantity forces manage_stock on — the backend requires explicit opt-in
//     to stock tracking whenever a quantity is present
func reconcileInventory(st *transformState) {
	payload := st.payload

	if _, ok := payload["capacity"]; !ok {
		if n, ok := numberValue(payload["stock"]); ok {
			payload["capacity"] = n
		}
	}
	if _, ok := payload["stock"]; !ok {
		if n, ok := numberValue(payload["capacity"]); ok {
			payload["stock"] = n
		}
	}

	if manage, ok := payload["manage_stock"].(bool); ok && !manage {
		payload["stock_mode"] = "unlimited"
		delete(payload, "manage_stock")
		st.unlimitedStock = true
		return
	}

	stock, stockOK := numberValue(payload["stock"])
	capacity, capacityOK := numberValue(payload["capacity"])
	if stockOK && capacityOK && stock > capacity {
		payload["capacity"] = stock
	}

	_, hasStock := payload["stock"]
	_, hasCapacity := payload["capacity"]
	if hasStock || hasCapacity {
		if manage, ok := payload["manage_stock"].(bool); !ok || !manage {
			payload["manage_stock"] = true
		}
	}
}
