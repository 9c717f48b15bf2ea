package wordpress

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the addressed entity does not exist remotely.
	ErrNotFound = errors.New("not found")

	// ErrAuth indicates the backend rejected the configured credentials.
	ErrAuth = errors.New("authentication failed")
)

// APIError is a structured rejection from the WordPress REST API, carrying
// the HTTP status plus the machine-readable code WordPress includes in its
// error envelope when available.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("wordpress api error %d: %s", e.StatusCode, e.Message)
}
