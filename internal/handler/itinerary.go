package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// ItineraryItemRequest is the JSON body for creating or updating an itinerary item.
type ItineraryItemRequest struct {
	Title           string             `json:"title"`
	Date            openapi_types.Date `json:"date"`
	TimeOfDay       string             `json:"time_of_day,omitempty"`
	Location        string             `json:"location,omitempty"`
	Category        string             `json:"category,omitempty"`
	EstimatedCost   *decimal.Decimal   `json:"estimated_cost,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	SortOrder       int                `json:"sort_order,omitempty"`
	Booked          bool               `json:"booked,omitempty"`
}

// ItineraryItemResponse is the JSON representation of a persisted itinerary item.
type ItineraryItemResponse struct {
	ID              uuid.UUID          `json:"id"`
	TripID          uuid.UUID          `json:"trip_id"`
	Title           string             `json:"title"`
	Date            openapi_types.Date `json:"date"`
	TimeOfDay       string             `json:"time_of_day,omitempty"`
	Location        string             `json:"location,omitempty"`
	Category        string             `json:"category,omitempty"`
	EstimatedCost   *decimal.Decimal   `json:"estimated_cost,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	SortOrder       int                `json:"sort_order"`
	Booked          bool               `json:"booked"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// handleCreateItineraryItem handles POST /trips/{tripID}/itinerary.
func (s *Server) handleCreateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req ItineraryItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	item := req.toDomain()
	item.TripID = tripID

	created, err := s.itinerary.Create(r.Context(), item)
	if err != nil {
		respondError(w, err, "itinerary item")
		return
	}

	writeJSON(w, http.StatusCreated, itineraryItemToResponse(created))
}

// handleListItineraryItems handles GET /trips/{tripID}/itinerary.
// Items come back date-ordered; for the day-grouped view use GET .../days.
func (s *Server) handleListItineraryItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	items, err := s.itinerary.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "itinerary item")
		return
	}

	out := make([]ItineraryItemResponse, len(items))
	for i, it := range items {
		out[i] = itineraryItemToResponse(it)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetItineraryItem handles GET /trips/{tripID}/itinerary/{itemID}.
func (s *Server) handleGetItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := tripChildIDs(w, r, "itemID")
	if !ok {
		return
	}

	item, err := s.itinerary.GetByID(r.Context(), tripID, itemID)
	if err != nil {
		respondError(w, err, "itinerary item")
		return
	}

	writeJSON(w, http.StatusOK, itineraryItemToResponse(item))
}

// handleUpdateItineraryItem handles PUT /trips/{tripID}/itinerary/{itemID}.
func (s *Server) handleUpdateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := tripChildIDs(w, r, "itemID")
	if !ok {
		return
	}

	var req ItineraryItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	item := req.toDomain()
	item.ID = itemID
	item.TripID = tripID

	updated, err := s.itinerary.Update(r.Context(), item)
	if err != nil {
		respondError(w, err, "itinerary item")
		return
	}

	writeJSON(w, http.StatusOK, itineraryItemToResponse(updated))
}

// handleDeleteItineraryItem handles DELETE /trips/{tripID}/itinerary/{itemID}.
func (s *Server) handleDeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := tripChildIDs(w, r, "itemID")
	if !ok {
		return
	}

	if err := s.itinerary.Delete(r.Context(), tripID, itemID); err != nil {
		respondError(w, err, "itinerary item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func (req ItineraryItemRequest) toDomain() domain.ItineraryItem {
	return domain.ItineraryItem{
		Title:           req.Title,
		Date:            req.Date.Time,
		TimeOfDay:       req.TimeOfDay,
		Location:        req.Location,
		Category:        req.Category,
		EstimatedCost:   req.EstimatedCost,
		DurationMinutes: req.DurationMinutes,
		SortOrder:       req.SortOrder,
		Booked:          req.Booked,
	}
}

func itineraryItemToResponse(it domain.ItineraryItem) ItineraryItemResponse {
	return ItineraryItemResponse{
		ID:              it.ID,
		TripID:          it.TripID,
		Title:           it.Title,
		Date:            openapi_types.Date{Time: it.Date},
		TimeOfDay:       it.TimeOfDay,
		Location:        it.Location,
		Category:        it.Category,
		EstimatedCost:   it.EstimatedCost,
		DurationMinutes: it.DurationMinutes,
		SortOrder:       it.SortOrder,
		Booked:          it.Booked,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}
