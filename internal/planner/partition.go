// Package planner implements the pure trip-planning aggregations: day
// partitioning of itinerary items, budget totals, and expense splitting.
// Every function here is a side-effect-free computation over caller-supplied
// slices — no I/O, no shared state — so services call them on every read.
package planner

import (
	"sort"
	"time"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// PlacedItem is an itinerary item assigned to a day of the trip.
// OutOfRange is true when the item's date fell outside the trip's date range
// and the item was clamped to the nearest day instead of its own.
type PlacedItem struct {
	domain.ItineraryItem
	OutOfRange bool
}

// Day is one calendar day of a trip with its itinerary items in display order.
type Day struct {
	// Number is the 1-indexed position of the day within the trip.
	Number int
	Date   time.Time
	Items  []PlacedItem
}

// DayPlan is the full day-by-day view of a trip's itinerary.
type DayPlan struct {
	Days []Day
	// OutOfRange lists every item whose date fell outside the trip range.
	// Each also appears, flagged, in the day it was clamped to (or only here
	// when the trip has zero days).
	OutOfRange []domain.ItineraryItem
}

// PartitionByDay buckets itinerary items into the calendar days of a trip.
//
// The day list enumerates every date from start to end inclusive; end before
// start degenerates to zero days rather than erroring. An item's day number is
// the day offset from start plus one. Items dated before the trip clamp to day
// 1 and items dated after it clamp to the last day; both are flagged so
// callers can warn the user instead of silently mis-filing them.
//
// Within a day, items are ordered by SortOrder ascending with insertion order
// breaking ties; TimeOfDay is display text and never consulted. An empty item
// slice yields every day of the trip with an empty, non-nil Items slice, so
// callers can render a full day picker without special cases.
func PartitionByDay(start, end time.Time, items []domain.ItineraryItem) DayPlan {
	start = dateOnly(start)
	end = dateOnly(end)

	var plan DayPlan
	numDays := 0
	if !end.Before(start) {
		numDays = daysBetween(start, end) + 1
	}

	plan.Days = make([]Day, numDays)
	for i := range plan.Days {
		plan.Days[i] = Day{
			Number: i + 1,
			Date:   start.AddDate(0, 0, i),
			Items:  []PlacedItem{},
		}
	}

	// Stable sort keeps insertion order for equal SortOrder values, which is
	// what fixes intra-day ordering after the per-day split below.
	sorted := make([]domain.ItineraryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	for _, item := range sorted {
		day := daysBetween(start, dateOnly(item.Date)) + 1
		outOfRange := day < 1 || day > numDays
		if outOfRange {
			plan.OutOfRange = append(plan.OutOfRange, item)
		}
		if numDays == 0 {
			continue
		}
		if day < 1 {
			day = 1
		}
		if day > numDays {
			day = numDays
		}
		plan.Days[day-1].Items = append(plan.Days[day-1].Items, PlacedItem{
			ItineraryItem: item,
			OutOfRange:    outOfRange,
		})
	}

	return plan
}

// dateOnly truncates t to midnight UTC so day arithmetic ignores time-of-day
// and the caller's zone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of calendar days from a to b.
// Both arguments must already be date-only UTC values.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
