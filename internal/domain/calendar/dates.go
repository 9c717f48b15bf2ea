package calendar

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Canonical date formats accepted by the remote backend.
const (
	// DateTimeLayout is the canonical timestamp form (YYYY-MM-DD HH:MM:SS).
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the canonical date-only form used by sale-price bounds.
	DateLayout = "2006-01-02"
)

var (
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// datetimeFields are normalized to the full DateTimeLayout form.
var datetimeFields = []string{"start_date", "end_date", "start_date_utc", "end_date_utc"}

// dateOnlyFields are normalized to the DateLayout form.
var dateOnlyFields = []string{"sale_price_start_date", "sale_price_end_date"}

// NaturalParser parses free-form date expressions ("next monday", "tomorrow
// 3pm", "in 3 days") into a concrete time. Implementations return ok=false
// when the expression is not recognized.
type NaturalParser interface {
	Parse(s string) (time.Time, bool)
}

// dateparserNatural backs NaturalParser with go-dateparser.
type dateparserNatural struct{}

// NewNaturalParser returns the default natural-language date parser.
func NewNaturalParser() NaturalParser {
	return dateparserNatural{}
}

func (dateparserNatural) Parse(s string) (time.Time, bool) {
	cfg := &dateparser.Configuration{
		CurrentTime:     time.Now(),
		DefaultTimezone: time.Local,
	}
	dt, err := dateparser.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, false
	}
	return dt.Time, true
}

// normalizeDate coerces a single date value into canonical form. Input is
// accepted in tiers, tried in order: natural-language/relative phrases, the
// exact canonical pattern (passed through unchanged), and an ISO-8601
// fallback obtained by replacing the first space with "T". Already-canonical
// input is a fixed point.
func normalizeDate(parser NaturalParser, value string, dateOnly bool) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	layout := DateTimeLayout
	if dateOnly {
		layout = DateLayout
	}

	if parser != nil {
		if t, ok := parser.Parse(value); ok {
			return t.Format(layout), true
		}
	}

	if dateOnly && dateOnlyPattern.MatchString(value) {
		return value, true
	}
	if dateTimePattern.MatchString(value) {
		if dateOnly {
			return value[:len(DateLayout)], true
		}
		return value, true
	}

	if t, ok := parseISO(value); ok {
		return t.Format(layout), true
	}
	return "", false
}

// parseISO handles ISO-8601 timestamps, including values written with a
// space instead of the "T" separator.
func parseISO(value string) (time.Time, bool) {
	candidate := strings.Replace(value, " ", "T", 1)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDates rewrites every recognized date-bearing field of the payload
// in place and returns a record for each field that could not be parsed.
// It never aborts early: all invalid fields are collected so they can be
// reported together.
func normalizeDates(parser NaturalParser, payload map[string]any) []InvalidDate {
	var invalid []InvalidDate

	normalize := func(field string, dateOnly bool) {
		raw, ok := payload[field]
		if !ok || raw == nil {
			return
		}
		value, isString := raw.(string)
		if !isString {
			invalid = append(invalid, InvalidDate{Field: field, Value: stringify(raw)})
			return
		}
		canonical, ok := normalizeDate(parser, value, dateOnly)
		if !ok {
			invalid = append(invalid, InvalidDate{Field: field, Value: value})
			return
		}
		payload[field] = canonical
	}

	for _, field := range datetimeFields {
		normalize(field, false)
	}
	for _, field := range dateOnlyFields {
		normalize(field, true)
	}
	return invalid
}

// parseCanonical parses a canonical or ISO timestamp using naive wall-clock
// semantics (no timezone interpretation beyond UTC placement).
func parseCanonical(value string) (time.Time, bool) {
	if t, err := time.Parse(DateTimeLayout, value); err == nil {
		return t, true
	}
	return parseISO(value)
}
