package calendar

import (
	"fmt"
	"strings"
)

// ValidationError reports a structural problem with a payload detected
// before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InvalidDate records one date field that could not be normalized, together
// with the raw value the caller supplied.
type InvalidDate struct {
	Field string
	Value string
}

// DateFormatError aggregates every date field in a payload that failed
// normalization, so the caller sees all offending fields in one report
// instead of fixing them one at a time.
type DateFormatError struct {
	Fields []InvalidDate
}

func (e *DateFormatError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%q)", f.Field, f.Value))
	}
	return fmt.Sprintf("unparseable date fields: %s; use YYYY-MM-DD HH:MM:SS, ISO-8601, or a natural-language phrase like \"next monday\"",
		strings.Join(parts, ", "))
}

// errTicketWithoutEvent is the hard failure raised when a ticket has no
// event association. Both the default resolver and the schema validator
// can detect this; they report it identically.
func errTicketWithoutEvent() ValidationError {
	return ValidationError{Field: "event_id", Message: "tickets must be associated with an event"}
}
