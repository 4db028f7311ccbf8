package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// ItineraryService implements business logic for ItineraryItem operations.
// It holds both the trips and items repos because creating an item requires
// verifying the parent trip exists.
type ItineraryService struct {
	trips repo.TripRepo
	items repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, items repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{trips: trips, items: items}
}

// Create validates the item, verifies the parent trip exists, then persists.
// An item dated outside the trip's range is accepted — the day partitioner
// clamps and reports it rather than this layer rejecting it, so users can jot
// down pre-trip plans before adjusting dates.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ItineraryService) Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	if _, err := s.trips.GetByID(ctx, item.TripID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	if err := validateItineraryItem(item); err != nil {
		return domain.ItineraryItem{}, err
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single item by ID, scoped to the given tripID.
func (s *ItineraryService) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	result, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all items for a trip in partitioner input order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListByTripID: %w", err)
	}
	if items == nil {
		items = []domain.ItineraryItem{}
	}
	return items, nil
}

// Update validates and persists changes to an existing item.
func (s *ItineraryService) Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	if err := validateItineraryItem(item); err != nil {
		return domain.ItineraryItem{}, err
	}
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID, scoped to the given tripID.
func (s *ItineraryService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// validateItineraryItem enforces business rules common to Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Date must be set.
//   - EstimatedCost and DurationMinutes, when present, must not be negative.
func validateItineraryItem(item domain.ItineraryItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if item.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if item.EstimatedCost != nil && item.EstimatedCost.IsNegative() {
		return fmt.Errorf("%w: estimated_cost must not be negative", domain.ErrValidation)
	}
	if item.DurationMinutes != nil && *item.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must not be negative", domain.ErrValidation)
	}
	return nil
}
