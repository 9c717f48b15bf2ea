package calendar

import "context"

// capTicketEndDate runs immediately after a successful ticket creation. When
// the caller did not choose an end date themselves, a sale window that runs
// past the event start is corrected: the ticket's end_date is capped to the
// event's start_date and the updated entity replaces the creation result.
//
// An explicit caller-supplied end date is always respected, even when it is
// later than the event start.
//
// Every failure here is swallowed: the creation already succeeded, and a
// best-effort correction must never turn it into an error.
func (s *Service) capTicketEndDate(ctx context.Context, created map[string]any, explicitEnd bool) map[string]any {
	if explicitEnd {
		return created
	}

	endDate, _ := stringValue(created["end_date"])
	if endDate == "" {
		return created
	}
	eventID, ok := eventReference(created)
	if !ok {
		return created
	}
	ticketID, ok := entityID(created)
	if !ok {
		return created
	}

	event, err := s.gateway.GetPost(ctx, KindEvent, eventID)
	if err != nil {
		s.logger.Warn().Err(err).
			Int64("event_id", eventID).
			Int64("ticket_id", ticketID).
			Msg("could not fetch event to cap ticket end date")
		return created
	}

	eventStart, _ := stringValue(event["start_date"])
	if eventStart == "" {
		return created
	}

	// Wall-clock comparison: both timestamps are naive local times.
	ticketEnd, okEnd := parseCanonical(endDate)
	start, okStart := parseCanonical(eventStart)
	if !okEnd || !okStart {
		s.logger.Warn().
			Str("ticket_end", endDate).
			Str("event_start", eventStart).
			Int64("ticket_id", ticketID).
			Msg("unparseable dates while capping ticket end date")
		return created
	}
	if !ticketEnd.After(start) {
		return created
	}

	updated, err := s.gateway.UpdatePost(ctx, KindTicket, ticketID, map[string]any{"end_date": eventStart})
	if err != nil {
		s.logger.Warn().Err(err).
			Int64("ticket_id", ticketID).
			Msg("corrective ticket end date update failed")
		return created
	}

	s.logger.Debug().
		Int64("ticket_id", ticketID).
		Str("end_date", eventStart).
		Msg("capped ticket end date to event start")
	return updated
}
