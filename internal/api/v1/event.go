package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a single timestamped, value-bearing record.
// The dimension fields are what reports filter and group on.
type Event struct {
	// ID is a client-supplied UUID (version 4).
	ID string `json:"id"`

	// DeviceType is e.g. "desktop", "mobile", "tablet"; null when unknown.
	DeviceType *string `json:"device_type"`

	// Category is nullable; uncategorized events group under null.
	Category *int64 `json:"category"`

	Client      int64 `json:"client"`
	ClientGroup int64 `json:"client_group"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	Valid bool `json:"valid"`

	// Value is the numeric field reports aggregate (mean, sum).
	Value float64 `json:"value"`
}

// Validate ensures the event has a usable id and timestamp.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !IsValidID(e.ID) {
		return fmt.Errorf("id must be a version 4 UUID")
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// IsValidID reports whether id parses as a version 4 UUID.
func IsValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.Version() == 4
}
