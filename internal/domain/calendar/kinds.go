package calendar

import "fmt"

// Kind identifies which calendar entity type a request operates on.
// The enumeration is closed: each kind selects its own transform rules,
// validation rules, and remote endpoint.
type Kind string

const (
	KindEvent     Kind = "event"
	KindVenue     Kind = "venue"
	KindOrganizer Kind = "organizer"
	KindTicket    Kind = "ticket"
)

// Kinds lists all supported entity kinds.
var Kinds = []Kind{KindEvent, KindVenue, KindOrganizer, KindTicket}

// Valid reports whether k is one of the supported entity kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindEvent, KindVenue, KindOrganizer, KindTicket:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string to a Kind, rejecting anything outside the
// closed enumeration.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown entity kind %q (must be event, venue, organizer, or ticket)", s)
	}
	return k, nil
}
