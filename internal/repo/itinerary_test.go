package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// itemFixture returns an ItineraryItem under the given trip with sensible defaults.
func itemFixture(tripID uuid.UUID) domain.ItineraryItem {
	return domain.ItineraryItem{
		TripID:    tripID,
		Title:     "Fushimi Inari hike",
		Date:      time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "Morning",
		Location:  "Kyoto",
		Category:  "Sightseeing",
	}
}

func TestItineraryRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	input := itemFixture(trip.ID)
	cost := decimal.RequireFromString("15.00")
	input.EstimatedCost = &cost
	minutes := 180
	input.DurationMinutes = &minutes

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Fushimi Inari hike", got.Title)
	assert.True(t, got.Date.Equal(input.Date))
	assert.Equal(t, "Morning", got.TimeOfDay)
	require.NotNil(t, got.EstimatedCost)
	assert.True(t, got.EstimatedCost.Equal(cost))
	require.NotNil(t, got.DurationMinutes)
	assert.Equal(t, 180, *got.DurationMinutes)
	assert.False(t, got.Booked)
}

func TestItineraryRepo_Create_OptionalFieldsNil(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	got, err := r.Create(ctx, itemFixture(trip.ID))

	require.NoError(t, err)
	assert.Nil(t, got.EstimatedCost)
	assert.Nil(t, got.DurationMinutes)
}

func TestItineraryRepo_GetByID_WrongTrip(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	other := mustCreateTrip(t, tx, tripFixture())

	created, err := r.Create(ctx, itemFixture(trip.ID))
	require.NoError(t, err)

	// An item is only reachable under its own trip.
	_, err = r.GetByID(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := r.GetByID(ctx, trip.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestItineraryRepo_ListByTripID_Ordering(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	// Insert out of order: a later date first, then two items on the same
	// earlier date with different sort orders.
	later := itemFixture(trip.ID)
	later.Title = "Day 5 onsen"
	later.Date = time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	second := itemFixture(trip.ID)
	second.Title = "Day 3 lunch"
	second.SortOrder = 2

	first := itemFixture(trip.ID)
	first.Title = "Day 3 shrine"
	first.SortOrder = 1

	for _, item := range []domain.ItineraryItem{later, second, first} {
		_, err := r.Create(ctx, item)
		require.NoError(t, err)
	}

	got, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	// Ordered by date, then sort_order within the day.
	assert.Equal(t, "Day 3 shrine", got[0].Title)
	assert.Equal(t, "Day 3 lunch", got[1].Title)
	assert.Equal(t, "Day 5 onsen", got[2].Title)
}

func TestItineraryRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	created, err := r.Create(ctx, itemFixture(trip.ID))
	require.NoError(t, err)

	created.Title = "Fushimi Inari at dawn"
	created.Booked = true

	got, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Fushimi Inari at dawn", got.Title)
	assert.True(t, got.Booked)
}

func TestItineraryRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewItineraryRepo(tx)

	err := r.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_CascadeOnTripDelete(t *testing.T) {
	tx := newTestTx(t)
	items := repo.NewItineraryRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	created, err := items.Create(ctx, itemFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, trips.Delete(ctx, trip.ID))

	_, err = items.GetByID(ctx, trip.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
