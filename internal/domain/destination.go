package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a place the trip visits (a city, region, or venue).
// Destinations carry no dates of their own; the itinerary items reference
// locations as free text, and destinations drive the trip's map and header UI.
type Destination struct {
	ID     uuid.UUID
	TripID uuid.UUID
	Name   string
	// Location is a free-form place string ("Kyoto, Japan"). Geocoding is an
	// external collaborator's job; this service stores what the client sends.
	Location  string
	SortOrder int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
