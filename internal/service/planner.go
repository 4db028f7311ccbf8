package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/planner"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// BudgetReport bundles everything the budget screen needs for one trip:
// overall health plus the per-category chart data, in the trip's currency.
type BudgetReport struct {
	Summary      planner.BudgetSummary
	Categories   []planner.CategoryTotal
	CurrencyCode string
}

// SplitPreview is the result of a transient split computation: the populated
// participants and whether their amounts reconcile with the total.
// Nothing about a preview is persisted.
type SplitPreview struct {
	Participants []domain.SplitParticipant
	Valid        bool
}

// PlannerService derives read-only aggregates over a trip's itinerary and
// expenses. All heavy lifting happens in the pure planner package; this
// service only fetches inputs and never caches results — every call
// recomputes from current data.
type PlannerService struct {
	trips    repo.TripRepo
	items    repo.ItineraryRepo
	expenses repo.ExpenseRepo
}

// NewPlannerService constructs a PlannerService backed by the provided repos.
func NewPlannerService(trips repo.TripRepo, items repo.ItineraryRepo, expenses repo.ExpenseRepo) *PlannerService {
	return &PlannerService{trips: trips, items: items, expenses: expenses}
}

// DayPlan returns the trip's itinerary bucketed into calendar days.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *PlannerService) DayPlan(ctx context.Context, tripID uuid.UUID) (planner.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return planner.DayPlan{}, fmt.Errorf("service.PlannerService.DayPlan: %w", err)
	}
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return planner.DayPlan{}, fmt.Errorf("service.PlannerService.DayPlan: %w", err)
	}
	return planner.PartitionByDay(trip.StartDate, trip.EndDate, items), nil
}

// Budget returns the trip's budget health and per-category breakdown.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *PlannerService) Budget(ctx context.Context, tripID uuid.UUID) (BudgetReport, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return BudgetReport{}, fmt.Errorf("service.PlannerService.Budget: %w", err)
	}
	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return BudgetReport{}, fmt.Errorf("service.PlannerService.Budget: %w", err)
	}
	return BudgetReport{
		Summary:      planner.AggregateBudget(trip.Budget, expenses),
		Categories:   planner.CategoryBreakdown(expenses),
		CurrencyCode: trip.CurrencyCode,
	}, nil
}

// PreviewSplit computes participant shares for a split-editing session.
// Returns domain.ErrValidation for an unknown strategy or a negative total;
// an empty participant list is not an error — it simply previews as invalid.
func (s *PlannerService) PreviewSplit(total decimal.Decimal, participants []domain.SplitParticipant, strategy domain.SplitStrategy) (SplitPreview, error) {
	if !strategy.Valid() {
		return SplitPreview{}, fmt.Errorf("%w: unknown split strategy %q", domain.ErrValidation, strategy)
	}
	if total.IsNegative() {
		return SplitPreview{}, fmt.Errorf("%w: total must not be negative", domain.ErrValidation)
	}
	computed := planner.ComputeSplit(total, participants, strategy)
	return SplitPreview{
		Participants: computed,
		Valid:        planner.ValidSplit(total, computed),
	}, nil
}
