package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for ItineraryItems.
type ItineraryRepo interface {
	// Create inserts a new itinerary item under its trip.
	Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// GetByID retrieves a single item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error)

	// ListByTripID returns all items for a trip ordered by item_date, then
	// sort_order, then created_at — the stable input order the day partitioner
	// relies on for tie breaking.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)

	// Update overwrites the mutable fields of an existing item.
	// Returns domain.ErrNotFound if the item does not exist under its trip.
	Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// Delete removes an item by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, trip_id, title, item_date, time_of_day, location, category,
	estimated_cost::text, duration_minutes, sort_order, booked, created_at, updated_at`

// Create inserts a new itinerary item row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		INSERT INTO itinerary_items
			(trip_id, title, item_date, time_of_day, location, category, estimated_cost, duration_minutes, sort_order, booked)
		VALUES
			(@trip_id, @title, @item_date, @time_of_day, @location, @category, @estimated_cost::numeric, @duration_minutes, @sort_order, @booked)
		RETURNING ` + itineraryColumns

	row := r.db.QueryRow(ctx, q, itineraryArgs(item))
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an item by primary key, scoped to its trip.
func (r *pgItineraryRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itinerary_items
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all items for a trip in partitioner input order.
func (r *pgItineraryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	const q = `
		SELECT ` + itineraryColumns + `
		FROM itinerary_items
		WHERE trip_id = @trip_id
		ORDER BY item_date, sort_order, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var items []domain.ItineraryItem
	for rows.Next() {
		it, err := scanItineraryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: rows: %w", err)
	}

	return items, nil
}

// Update overwrites the mutable fields of an item and returns the updated record.
func (r *pgItineraryRepo) Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		UPDATE itinerary_items
		SET title            = @title,
		    item_date        = @item_date,
		    time_of_day      = @time_of_day,
		    location         = @location,
		    category         = @category,
		    estimated_cost   = @estimated_cost::numeric,
		    duration_minutes = @duration_minutes,
		    sort_order       = @sort_order,
		    booked           = @booked,
		    updated_at       = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + itineraryColumns

	args := itineraryArgs(item)
	args["id"] = item.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by primary key, scoped to its trip.
func (r *pgItineraryRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM itinerary_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// itineraryArgs maps the mutable item fields into NamedArgs.
// Nil EstimatedCost/DurationMinutes become SQL NULL.
func itineraryArgs(item domain.ItineraryItem) pgx.NamedArgs {
	var cost any
	if item.EstimatedCost != nil {
		cost = item.EstimatedCost.String()
	}
	return pgx.NamedArgs{
		"trip_id":          item.TripID,
		"title":            item.Title,
		"item_date":        item.Date,
		"time_of_day":      item.TimeOfDay,
		"location":         item.Location,
		"category":         item.Category,
		"estimated_cost":   cost,
		"duration_minutes": item.DurationMinutes,
		"sort_order":       item.SortOrder,
		"booked":           item.Booked,
	}
}

// scanItineraryItem maps a single database row into a domain.ItineraryItem.
func scanItineraryItem(s scanner) (domain.ItineraryItem, error) {
	var (
		it       domain.ItineraryItem
		id       pgtype.UUID
		tripID   pgtype.UUID
		itemDate pgtype.Date
		cost     pgtype.Text
		duration pgtype.Int4
	)

	err := s.Scan(&id, &tripID, &it.Title, &itemDate, &it.TimeOfDay, &it.Location, &it.Category,
		&cost, &duration, &it.SortOrder, &it.Booked, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryItem{}, domain.ErrNotFound
		}
		return domain.ItineraryItem{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.TripID = uuid.UUID(tripID.Bytes)
	it.Date = itemDate.Time
	if cost.Valid {
		c, err := decimal.NewFromString(cost.String)
		if err != nil {
			return domain.ItineraryItem{}, fmt.Errorf("parse estimated_cost %q: %w", cost.String, err)
		}
		it.EstimatedCost = &c
	}
	if duration.Valid {
		d := int(duration.Int32)
		it.DurationMinutes = &d
	}
	return it, nil
}
