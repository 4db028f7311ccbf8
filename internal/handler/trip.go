package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// TripRequest is the JSON body for creating or updating a trip.
// Dates are date-only ("2006-01-02"); Budget is a decimal string or number.
type TripRequest struct {
	Name         string             `json:"name"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	Budget       *decimal.Decimal   `json:"budget,omitempty"`
	CurrencyCode string             `json:"currency_code,omitempty"`
	Category     string             `json:"category,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// TripResponse is the JSON representation of a persisted trip.
type TripResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	Budget       *decimal.Decimal   `json:"budget,omitempty"`
	CurrencyCode string             `json:"currency_code"`
	Category     string             `json:"category,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// TripListResponse is the paged wrapper for GET /trips.
type TripListResponse struct {
	Data       []TripResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// handleGetTrip handles GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// handleUpdateTrip handles PUT /trips/{tripID}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req TripRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	trip := req.toDomain()
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// handleDeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func (req TripRequest) toDomain() domain.Trip {
	return domain.Trip{
		Name:         req.Name,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		Budget:       req.Budget,
		CurrencyCode: req.CurrencyCode,
		Category:     req.Category,
		Notes:        req.Notes,
	}
}

func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		Budget:       t.Budget,
		CurrencyCode: t.CurrencyCode,
		Category:     t.Category,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
