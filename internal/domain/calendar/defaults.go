package calendar

import (
	"context"
	"fmt"
)

// saleWindowLeadDays is how far before the event start a ticket goes on sale
// when the caller does not say otherwise.
const saleWindowLeadDays = 7

// resolveTicketDefaults fills a new ticket's missing sale-window bounds from
// its event. Sales default to stopping when the event starts, and to opening
// seven calendar days earlier at the same wall-clock time. The two defaults
// are computed independently: only the missing bound is filled.
//
// Called only on ticket creation. A ticket with no event association is a
// hard failure here, not a silent skip.
func (s *Service) resolveTicketDefaults(ctx context.Context, st *transformState) error {
	payload := st.payload
	_, hasStart := payload["start_date"]
	_, hasEnd := payload["end_date"]
	if hasStart && hasEnd {
		return nil
	}

	eventID, ok := eventReference(payload)
	if !ok {
		return errTicketWithoutEvent()
	}

	event, err := s.gateway.GetPost(ctx, KindEvent, eventID)
	if err != nil {
		return fmt.Errorf("fetch event %d for ticket sale window: %w", eventID, err)
	}

	eventStart, _ := stringValue(event["start_date"])
	if eventStart == "" {
		return fmt.Errorf("event %d has no start date to derive the ticket sale window from", eventID)
	}

	if !hasEnd {
		// Sales stop when the event starts.
		payload["end_date"] = eventStart
	}

	if !hasStart {
		start, ok := parseCanonical(eventStart)
		if !ok {
			return fmt.Errorf("event %d start date %q is not a recognized timestamp", eventID, eventStart)
		}
		// Calendar subtraction, not elapsed-time subtraction: the sale
		// opens on the same wall-clock time a week earlier.
		payload["start_date"] = start.AddDate(0, 0, -saleWindowLeadDays).Format(DateTimeLayout)
	}

	return nil
}
