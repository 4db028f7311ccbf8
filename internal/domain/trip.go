// Package domain contains the core data types for the Itinero trip-planning API.
// This package depends on no other internal package and is imported by every
// other internal package (planner, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip represents a planned trip with a fixed date range.
// A trip is the top-level aggregate; destinations, itinerary items, and
// expenses all belong to a trip.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// Budget is the optional spending ceiling for the whole trip.
	// nil means the user never set one; budget-health fields are then absent
	// from the budget summary.
	Budget       *decimal.Decimal
	CurrencyCode string
	Category     string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
