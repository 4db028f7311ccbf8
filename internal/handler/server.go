// Package handler implements the HTTP handlers for the Itinero API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (trip.go, expense.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/planner"
	"github.com/itinero-app/itinero/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationServicer defines the business operations the destination handlers depend on.
type DestinationServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, tripID, destID uuid.UUID) (domain.Destination, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	Delete(ctx context.Context, tripID, destID uuid.UUID) error
}

// ItineraryServicer defines the business operations the itinerary handlers depend on.
type ItineraryServicer interface {
	Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)
	Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error)
	ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)
	Update(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error
	ListCategories(ctx context.Context) ([]string, error)
}

// PlannerServicer defines the derived-aggregate operations the planner handlers depend on.
type PlannerServicer interface {
	DayPlan(ctx context.Context, tripID uuid.UUID) (planner.DayPlan, error)
	Budget(ctx context.Context, tripID uuid.UUID) (service.BudgetReport, error)
	PreviewSplit(total decimal.Decimal, participants []domain.SplitParticipant, strategy domain.SplitStrategy) (service.SplitPreview, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements every API endpoint. Wire it in main.go via Routes.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	destinations DestinationServicer
	itinerary    ItineraryServicer
	expenses     ExpenseServicer
	planner      PlannerServicer
	export       ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	destinations DestinationServicer,
	itinerary ItineraryServicer,
	expenses ExpenseServicer,
	plannerSvc PlannerServicer,
	export ExportServicer,
) *Server {
	return &Server{
		trips:        trips,
		destinations: destinations,
		itinerary:    itinerary,
		expenses:     expenses,
		planner:      plannerSvc,
		export:       export,
	}
}

// Routes registers every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPISpec)
	r.Get("/docs", s.handleDocs)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Get("/", s.handleListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)

			r.Get("/days", s.handleGetDayPlan)
			r.Get("/budget", s.handleGetBudget)

			r.Route("/destinations", func(r chi.Router) {
				r.Post("/", s.handleCreateDestination)
				r.Get("/", s.handleListDestinations)
				r.Get("/{destinationID}", s.handleGetDestination)
				r.Put("/{destinationID}", s.handleUpdateDestination)
				r.Delete("/{destinationID}", s.handleDeleteDestination)
			})

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/", s.handleCreateItineraryItem)
				r.Get("/", s.handleListItineraryItems)
				r.Get("/{itemID}", s.handleGetItineraryItem)
				r.Put("/{itemID}", s.handleUpdateItineraryItem)
				r.Delete("/{itemID}", s.handleDeleteItineraryItem)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", s.handleCreateExpense)
				r.Get("/", s.handleListExpenses)
				r.Get("/{expenseID}", s.handleGetExpense)
				r.Put("/{expenseID}", s.handleUpdateExpense)
				r.Delete("/{expenseID}", s.handleDeleteExpense)
			})
		})
	})

	r.Get("/expenses/categories", s.handleListCategories)
	r.Post("/split/preview", s.handlePreviewSplit)
	r.Get("/export", s.handleExport)

	return r
}
