package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingFields is returned when an item's required fields are empty
// after trimming. Callers surface it to the user before any storage call.
var ErrMissingFields = errors.New("name and description are required")

type Item struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Photo is a dependent record referencing an externally stored image.
// The engine keeps only the URI, never the image bytes.
type Photo struct {
	ID       int64
	ItemID   int64
	PhotoURI string
}

type Location struct {
	ID        int64
	ItemID    int64
	Latitude  float64
	Longitude float64
}

// ItemWithPhoto is the left-join list projection. PhotoURI is nil for
// items without a photo.
type ItemWithPhoto struct {
	Item
	PhotoURI *string
}

// ItemWithLocation is the map projection; only items that have a
// location appear in it.
type ItemWithLocation struct {
	Item
	Latitude  float64
	Longitude float64
}

// ValidateItem checks the required item fields. Both name and
// description must be non-empty after trimming whitespace.
func ValidateItem(name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return ErrMissingFields
	}
	return nil
}
