package calendar

import "strings"

// validateSchema confirms structural correctness of a transformed payload
// before dispatch. It runs after the field transformer, so venue/organizer
// title mirroring and ticket aliasing have already happened. Any failure
// aborts the whole operation; nothing is written remotely.
func validateSchema(kind Kind, payload map[string]any, creating bool) error {
	if creating {
		if title, _ := stringValue(payload["title"]); strings.TrimSpace(title) == "" {
			return ValidationError{Field: "title", Message: "required"}
		}
		if kind == KindEvent {
			for _, field := range []string{"start_date", "end_date"} {
				if v, _ := stringValue(payload[field]); strings.TrimSpace(v) == "" {
					return ValidationError{Field: field, Message: "required for event creation"}
				}
			}
		}
		if kind == KindTicket {
			if _, ok := eventReference(payload); !ok {
				return errTicketWithoutEvent()
			}
		}
		if _, ok := payload["status"]; !ok {
			payload["status"] = "publish"
		}
	}

	if kind == KindTicket {
		// The normalizer already coerced acceptable inputs into canonical
		// form; a mismatch here means fundamentally unparseable input.
		for _, field := range []string{"start_date", "end_date"} {
			if v, ok := stringValue(payload[field]); ok && !dateTimePattern.MatchString(v) {
				return ValidationError{Field: field, Message: "must be in YYYY-MM-DD HH:MM:SS format"}
			}
		}
		for _, field := range dateOnlyFields {
			if v, ok := stringValue(payload[field]); ok && !dateOnlyPattern.MatchString(v) {
				return ValidationError{Field: field, Message: "must be in YYYY-MM-DD format"}
			}
		}
	}

	return nil
}
