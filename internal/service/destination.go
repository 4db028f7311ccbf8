package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// DestinationService implements business logic for Destination operations.
type DestinationService struct {
	trips repo.TripRepo
	dests repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repos.
func NewDestinationService(trips repo.TripRepo, dests repo.DestinationRepo) *DestinationService {
	return &DestinationService{trips: trips, dests: dests}
}

// Create validates the destination, verifies the parent trip exists, then persists.
func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if _, err := s.trips.GetByID(ctx, dest.TripID); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.dests.Create(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single destination by ID, scoped to the given tripID.
func (s *DestinationService) GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error) {
	result, err := s.dests.GetByID(ctx, tripID, destID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all destinations for a trip in display order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DestinationService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	dests, err := s.dests.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.ListByTripID: %w", err)
	}
	if dests == nil {
		dests = []domain.Destination{}
	}
	return dests, nil
}

// Update validates and persists changes to an existing destination.
func (s *DestinationService) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.dests.Update(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by ID, scoped to the given tripID.
func (s *DestinationService) Delete(ctx context.Context, tripID, destID uuid.UUID) error {
	if err := s.dests.Delete(ctx, tripID, destID); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces business rules common to Create and Update.
func validateDestination(dest domain.Destination) error {
	if strings.TrimSpace(dest.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
