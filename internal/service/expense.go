package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
// It holds both the trips and expenses repos because creating an expense
// requires verifying the parent trip exists and inheriting its currency.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create validates the expense, verifies the parent trip exists, then persists.
// An expense without a currency code inherits the trip's.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	trip, err := s.trips.GetByID(ctx, expense.TripID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}
	if expense.CurrencyCode == "" {
		expense.CurrencyCode = trip.CurrencyCode
	}
	result, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single expense by ID, scoped to the given tripID.
func (s *ExpenseService) GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error) {
	result, err := s.expenses.GetByID(ctx, tripID, expenseID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripIDPaged returns one page of a trip's expenses plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	expenses, total, err := s.expenses.ListByTripIDPaged(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ExpenseService.ListByTripIDPaged: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, total, nil
}

// Update validates and persists changes to an existing expense.
func (s *ExpenseService) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}
	result, err := s.expenses.Update(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by ID, scoped to the given tripID.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	if err := s.expenses.Delete(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// ListCategories returns the distinct category labels across all expenses.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.expenses.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListCategories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// validateExpense enforces business rules common to Create and Update.
// Amount sign is validated here, at entry time — the budget aggregator
// deliberately sums whatever it is handed.
func validateExpense(expense domain.Expense) error {
	if strings.TrimSpace(expense.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if expense.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if expense.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return nil
}
