package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// DestinationRepo defines the persistence operations for Destinations.
type DestinationRepo interface {
	// Create inserts a new destination under its trip.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by ID, scoped to the given tripID.
	GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error)

	// ListByTripID returns all destinations for a trip ordered by sort_order,
	// then name.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)

	// Update overwrites the mutable fields of an existing destination.
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// Delete removes a destination by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, destID uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, trip_id, name, location, sort_order, notes, created_at, updated_at`

// Create inserts a new destination row and returns the full persisted record.
func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (trip_id, name, location, sort_order, notes)
		VALUES (@trip_id, @name, @location, @sort_order, @notes)
		RETURNING ` + destinationColumns

	row := r.db.QueryRow(ctx, q, destinationArgs(dest))
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a destination by primary key, scoped to its trip.
func (r *pgDestinationRepo) GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": destID, "trip_id": tripID})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all destinations for a trip in display order.
func (r *pgDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE trip_id = @trip_id
		ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: rows: %w", err)
	}

	return dests, nil
}

// Update overwrites the mutable fields of a destination and returns the updated record.
func (r *pgDestinationRepo) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET name       = @name,
		    location   = @location,
		    sort_order = @sort_order,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + destinationColumns

	args := destinationArgs(dest)
	args["id"] = dest.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by primary key, scoped to its trip.
func (r *pgDestinationRepo) Delete(ctx context.Context, tripID, destID uuid.UUID) error {
	const q = `DELETE FROM destinations WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": destID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// destinationArgs maps the mutable destination fields into NamedArgs.
func destinationArgs(dest domain.Destination) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":    dest.TripID,
		"name":       dest.Name,
		"location":   dest.Location,
		"sort_order": dest.SortOrder,
		"notes":      dest.Notes,
	}
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d      domain.Destination
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &d.Name, &d.Location, &d.SortOrder, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	return d, nil
}
