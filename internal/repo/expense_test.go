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

// expenseFixture returns an Expense under the given trip with sensible defaults.
func expenseFixture(tripID uuid.UUID) domain.Expense {
	return domain.Expense{
		TripID:       tripID,
		Title:        "Ryokan night",
		Amount:       decimal.RequireFromString("180.00"),
		Category:     "Lodging",
		Date:         time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "JPY",
	}
}

func TestExpenseRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	input := expenseFixture(trip.ID)
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, input.Title, got.Title)
	// Amounts must survive the numeric round trip exactly.
	assert.True(t, got.Amount.Equal(input.Amount), "Amount mismatch: got %s", got.Amount)
	assert.Equal(t, "Lodging", got.Category)
	assert.Equal(t, "JPY", got.CurrencyCode)
	assert.True(t, got.Date.Equal(input.Date))
}

func TestExpenseRepo_GetByID_WrongTrip(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	other := mustCreateTrip(t, tx, tripFixture())

	created, err := r.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	_, err = r.GetByID(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseRepo_ListByTripID_NewestFirst(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	older := expenseFixture(trip.ID)
	older.Title = "Day 1 ramen"
	older.Date = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	newer := expenseFixture(trip.ID)
	newer.Title = "Day 4 museum"
	newer.Date = time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)

	for _, e := range []domain.Expense{older, newer} {
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	got, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Day 4 museum", got[0].Title)
	assert.Equal(t, "Day 1 ramen", got[1].Title)
}

func TestExpenseRepo_ListByTripIDPaged(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	for i := 0; i < 5; i++ {
		e := expenseFixture(trip.ID)
		e.Date = e.Date.AddDate(0, 0, i)
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	page, total, err := r.ListByTripIDPaged(ctx, trip.ID, domain.PaginationParams{Page: 2, Limit: 3})

	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)
}

func TestExpenseRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	created, err := r.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	created.Amount = decimal.RequireFromString("195.50")
	created.Notes = "late checkout fee"

	got, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("195.50")))
	assert.Equal(t, "late checkout fee", got.Notes)
}

func TestExpenseRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())
	created, err := r.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, trip.ID, created.ID))

	_, err = r.GetByID(ctx, trip.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseRepo_ListCategories(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewExpenseRepo(tx)
	ctx := context.Background()

	trip := mustCreateTrip(t, tx, tripFixture())

	// Two expenses in the same category, one in another, one uncategorized.
	for _, category := range []string{"Lodging", "Lodging", "Food", ""} {
		e := expenseFixture(trip.ID)
		e.Category = category
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	got, err := r.ListCategories(ctx)

	require.NoError(t, err)
	// Distinct, alphabetical, empty labels excluded.
	assert.Equal(t, []string{"Food", "Lodging"}, got)
}
