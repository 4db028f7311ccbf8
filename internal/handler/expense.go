package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// ExpenseRequest is the JSON body for creating or updating an expense.
// Amount is a decimal string or number; an empty currency code inherits the
// trip's currency on create.
type ExpenseRequest struct {
	Title        string             `json:"title"`
	Amount       decimal.Decimal    `json:"amount"`
	Category     string             `json:"category,omitempty"`
	Date         openapi_types.Date `json:"date"`
	CurrencyCode string             `json:"currency_code,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	ReceiptRef   string             `json:"receipt_ref,omitempty"`
}

// ExpenseResponse is the JSON representation of a persisted expense.
type ExpenseResponse struct {
	ID           uuid.UUID          `json:"id"`
	TripID       uuid.UUID          `json:"trip_id"`
	Title        string             `json:"title"`
	Amount       decimal.Decimal    `json:"amount"`
	Category     string             `json:"category,omitempty"`
	Date         openapi_types.Date `json:"date"`
	CurrencyCode string             `json:"currency_code"`
	Notes        string             `json:"notes,omitempty"`
	ReceiptRef   string             `json:"receipt_ref,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ExpenseListResponse is the paged wrapper for GET /trips/{tripID}/expenses.
type ExpenseListResponse struct {
	Data       []ExpenseResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// handleCreateExpense handles POST /trips/{tripID}/expenses.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req ExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	expense := req.toDomain()
	expense.TripID = tripID

	created, err := s.expenses.Create(r.Context(), expense)
	if err != nil {
		respondError(w, err, "expense")
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// handleListExpenses handles GET /trips/{tripID}/expenses.
// Supports ?page= and ?limit= query parameters.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	params := pageParams(r)
	expenses, total, err := s.expenses.ListByTripIDPaged(r.Context(), tripID, params)
	if err != nil {
		respondError(w, err, "expense")
		return
	}

	data := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = expenseToResponse(e)
	}
	writeJSON(w, http.StatusOK, ExpenseListResponse{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// handleGetExpense handles GET /trips/{tripID}/expenses/{expenseID}.
func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	tripID, expenseID, ok := tripChildIDs(w, r, "expenseID")
	if !ok {
		return
	}

	expense, err := s.expenses.GetByID(r.Context(), tripID, expenseID)
	if err != nil {
		respondError(w, err, "expense")
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(expense))
}

// handleUpdateExpense handles PUT /trips/{tripID}/expenses/{expenseID}.
func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, expenseID, ok := tripChildIDs(w, r, "expenseID")
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	expense := req.toDomain()
	expense.ID = expenseID
	expense.TripID = tripID

	updated, err := s.expenses.Update(r.Context(), expense)
	if err != nil {
		respondError(w, err, "expense")
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(updated))
}

// handleDeleteExpense handles DELETE /trips/{tripID}/expenses/{expenseID}.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	tripID, expenseID, ok := tripChildIDs(w, r, "expenseID")
	if !ok {
		return
	}

	if err := s.expenses.Delete(r.Context(), tripID, expenseID); err != nil {
		respondError(w, err, "expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListCategories handles GET /expenses/categories.
// Returns the distinct category labels in use, alphabetically, for pickers.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.expenses.ListCategories(r.Context())
	if err != nil {
		respondError(w, err, "category")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// --- mapping helpers --------------------------------------------------------

func (req ExpenseRequest) toDomain() domain.Expense {
	return domain.Expense{
		Title:        req.Title,
		Amount:       req.Amount,
		Category:     req.Category,
		Date:         req.Date.Time,
		CurrencyCode: req.CurrencyCode,
		Notes:        req.Notes,
		ReceiptRef:   req.ReceiptRef,
	}
}

func expenseToResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		TripID:       e.TripID,
		Title:        e.Title,
		Amount:       e.Amount,
		Category:     e.Category,
		Date:         openapi_types.Date{Time: e.Date},
		CurrencyCode: e.CurrencyCode,
		Notes:        e.Notes,
		ReceiptRef:   e.ReceiptRef,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
