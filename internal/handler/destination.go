package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// DestinationRequest is the JSON body for creating or updating a destination.
type DestinationRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// DestinationResponse is the JSON representation of a persisted destination.
type DestinationResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	SortOrder int       `json:"sort_order"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// handleCreateDestination handles POST /trips/{tripID}/destinations.
func (s *Server) handleCreateDestination(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req DestinationRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.destinations.Create(r.Context(), domain.Destination{
		TripID:    tripID,
		Name:      req.Name,
		Location:  req.Location,
		SortOrder: req.SortOrder,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	writeJSON(w, http.StatusCreated, destinationToResponse(created))
}

// handleListDestinations handles GET /trips/{tripID}/destinations.
func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	dests, err := s.destinations.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	out := make([]DestinationResponse, len(dests))
	for i, d := range dests {
		out[i] = destinationToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetDestination handles GET /trips/{tripID}/destinations/{destinationID}.
func (s *Server) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := tripChildIDs(w, r, "destinationID")
	if !ok {
		return
	}

	dest, err := s.destinations.GetByID(r.Context(), tripID, destID)
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	writeJSON(w, http.StatusOK, destinationToResponse(dest))
}

// handleUpdateDestination handles PUT /trips/{tripID}/destinations/{destinationID}.
func (s *Server) handleUpdateDestination(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := tripChildIDs(w, r, "destinationID")
	if !ok {
		return
	}

	var req DestinationRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.destinations.Update(r.Context(), domain.Destination{
		ID:        destID,
		TripID:    tripID,
		Name:      req.Name,
		Location:  req.Location,
		SortOrder: req.SortOrder,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, err, "destination")
		return
	}

	writeJSON(w, http.StatusOK, destinationToResponse(updated))
}

// handleDeleteDestination handles DELETE /trips/{tripID}/destinations/{destinationID}.
func (s *Server) handleDeleteDestination(w http.ResponseWriter, r *http.Request) {
	tripID, destID, ok := tripChildIDs(w, r, "destinationID")
	if !ok {
		return
	}

	if err := s.destinations.Delete(r.Context(), tripID, destID); err != nil {
		respondError(w, err, "destination")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tripChildIDs parses the tripID plus one child-resource ID from the path,
// writing the 422 response itself when either is malformed.
func tripChildIDs(w http.ResponseWriter, r *http.Request, childParam string) (tripID, childID uuid.UUID, ok bool) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return uuid.UUID{}, uuid.UUID{}, false
	}
	childID, err = uuidParam(r, childParam)
	if err != nil {
		respondBadRequest(w, "invalid "+childParam)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return tripID, childID, true
}

func destinationToResponse(d domain.Destination) DestinationResponse {
	return DestinationResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		Name:      d.Name,
		Location:  d.Location,
		SortOrder: d.SortOrder,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
