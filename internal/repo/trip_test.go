package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
	"github.com/itinero-app/itinero/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// automatically rolled back when the test finishes, giving free per-test
// isolation — no cleanup SQL needed.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Name:         "Japan 2026",
		StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		Notes:        "Test notes",
	}
}

// mustCreateTrip inserts a trip through the repo and fails the test on error.
func mustCreateTrip(t *testing.T, tx pgx.Tx, trip domain.Trip) domain.Trip {
	t.Helper()
	created, err := repo.NewTripRepo(tx).Create(context.Background(), trip)
	require.NoError(t, err)
	return created
}

func TestTripRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	assert.Equal(t, input.CurrencyCode, got.CurrencyCode)
	assert.Equal(t, input.Notes, got.Notes)
	assert.Nil(t, got.Budget, "Budget should be nil when not provided")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_BudgetRoundTrip(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	budget := decimal.RequireFromString("2500.50")
	input := tripFixture()
	input.Budget = &budget

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, got.Budget)
	// numeric(14,2) must come back exactly, not as a float approximation.
	assert.True(t, got.Budget.Equal(budget), "Budget mismatch: got %s", got.Budget)
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created := mustCreateTrip(t, tx, tripFixture())

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_OrderedByStartDateDesc(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	earlier := tripFixture()
	earlier.Name = "Earlier Trip"

	later := tripFixture()
	later.Name = "Later Trip"
	later.StartDate = earlier.StartDate.AddDate(0, 1, 0)
	later.EndDate = earlier.EndDate.AddDate(0, 1, 0)

	mustCreateTrip(t, tx, earlier)
	mustCreateTrip(t, tx, later)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Later Trip", got[0].Name)
	assert.Equal(t, "Earlier Trip", got[1].Name)
}

func TestTripRepo_ListPaged(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		trip := tripFixture()
		trip.StartDate = trip.StartDate.AddDate(0, i, 0)
		trip.EndDate = trip.EndDate.AddDate(0, i, 0)
		mustCreateTrip(t, tx, trip)
	}

	page, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1) // 3 trips, limit 2 → second page holds the last one
}

func TestTripRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created := mustCreateTrip(t, tx, tripFixture())

	created.Name = "Japan, spring edition"
	budget := decimal.RequireFromString("3000.00")
	created.Budget = &budget

	got, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Japan, spring edition", got.Name)
	require.NotNil(t, got.Budget)
	assert.True(t, got.Budget.Equal(budget))
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	trip := tripFixture()
	trip.ID = uuid.New() // never inserted

	_, err := r.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created := mustCreateTrip(t, tx, tripFixture())

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err := r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
