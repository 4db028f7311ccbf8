package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItineraryItem represents a single planned activity on a trip.
// Date is a calendar date (midnight UTC); TimeOfDay is the user's free-form
// time label ("09:30", "Afternoon") and is display-only — day grouping and
// intra-day ordering never consult it.
type ItineraryItem struct {
	ID     uuid.UUID
	TripID uuid.UUID
	Title  string
	Date   time.Time
	// TimeOfDay is display text, not parsed by the server.
	TimeOfDay string
	Location  string
	Category  string
	// EstimatedCost is the optional planning-time cost guess; it is not an
	// expense and never feeds the budget aggregator.
	EstimatedCost   *decimal.Decimal
	DurationMinutes *int
	// SortOrder fixes the item's position within its day. Items with equal
	// SortOrder keep their stored order (stable sort downstream).
	SortOrder int
	Booked    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
