package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// ErrorDetail is the machine-readable body of an API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail the way every error endpoint returns it.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Pagination is the metadata block returned by every paged list endpoint.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError maps a service error to the proper HTTP status and body.
// domain.ErrNotFound → 404, domain.ErrValidation → 422, everything else → 500
// with a generic message (the real error is logged, not leaked).
func respondError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code:    "not_found",
			Message: resource + " not found",
		}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{
			Code:    "validation_error",
			Message: validationMessage(err),
		}})
	default:
		slog.Error("handler error", "resource", resource, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
			Code:    "internal_error",
			Message: "internal server error",
		}})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (e.g. missing or malformed body, bad UUID in the path).
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{
		Code:    "validation_error",
		Message: message,
	}})
}

// validationMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: name is required"
// → "name is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// decodeBody decodes the JSON request body into v, rejecting unknown fields
// so client typos surface as 422s instead of silently dropped data.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// uuidParam extracts and parses a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// pageParams builds PaginationParams from the ?page= and ?limit= query params.
// Absent or non-numeric values fall back to the domain defaults.
func pageParams(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, ok := intQuery(r, "page"); ok {
		page = &v
	}
	if v, ok := intQuery(r, "limit"); ok {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}

func intQuery(r *http.Request, name string) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
