package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/planner"
	"github.com/itinero-app/itinero/backend/internal/service"
)

// DayResponse is one calendar day of a trip with its items in display order.
type DayResponse struct {
	Number int                  `json:"number"`
	Date   openapi_types.Date   `json:"date"`
	Items  []PlacedItemResponse `json:"items"`
}

// PlacedItemResponse is an itinerary item placed on a day. OutOfRange marks
// items whose own date fell outside the trip and were clamped here.
type PlacedItemResponse struct {
	ItineraryItemResponse
	OutOfRange bool `json:"out_of_range,omitempty"`
}

// DayPlanResponse is the full day-by-day view returned by GET /trips/{tripID}/days.
type DayPlanResponse struct {
	Days []DayResponse `json:"days"`
	// OutOfRangeItemIDs lists the IDs of items that did not fit the trip's
	// date range, so clients can surface a warning without diffing days.
	OutOfRangeItemIDs []uuid.UUID `json:"out_of_range_item_ids,omitempty"`
}

// BudgetResponse is the budget health view returned by GET /trips/{tripID}/budget.
// Remaining and PercentUsed are omitted entirely when the trip has no budget.
type BudgetResponse struct {
	Spent        decimal.Decimal         `json:"spent"`
	Remaining    *decimal.Decimal        `json:"remaining,omitempty"`
	PercentUsed  *decimal.Decimal        `json:"percent_used,omitempty"`
	OverBudget   bool                    `json:"over_budget"`
	NearLimit    bool                    `json:"near_limit"`
	CurrencyCode string                  `json:"currency_code"`
	Categories   []CategoryTotalResponse `json:"categories"`
}

// CategoryTotalResponse is one slice of the category breakdown chart.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SplitParticipantPayload is a participant in a split preview request or response.
type SplitParticipantPayload struct {
	ID         uuid.UUID        `json:"id,omitempty"`
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// SplitPreviewRequest is the JSON body for POST /split/preview.
type SplitPreviewRequest struct {
	Total        decimal.Decimal           `json:"total"`
	Strategy     domain.SplitStrategy      `json:"strategy"`
	Participants []SplitParticipantPayload `json:"participants"`
}

// SplitPreviewResponse carries the computed shares and the reconciliation flag.
type SplitPreviewResponse struct {
	Participants []SplitParticipantPayload `json:"participants"`
	Valid        bool                      `json:"valid"`
}

// handleGetDayPlan handles GET /trips/{tripID}/days.
func (s *Server) handleGetDayPlan(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	plan, err := s.planner.DayPlan(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, dayPlanToResponse(plan))
}

// handleGetBudget handles GET /trips/{tripID}/budget.
func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	report, err := s.planner.Budget(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, budgetReportToResponse(report))
}

// handlePreviewSplit handles POST /split/preview.
// The computation is transient: nothing is persisted, and clients call this
// on every edit of the split sheet.
func (s *Server) handlePreviewSplit(w http.ResponseWriter, r *http.Request) {
	var req SplitPreviewRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	participants := make([]domain.SplitParticipant, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = domain.SplitParticipant{
			ID:         p.ID,
			Name:       p.Name,
			Amount:     p.Amount,
			Percentage: p.Percentage,
		}
	}

	preview, err := s.planner.PreviewSplit(req.Total, participants, req.Strategy)
	if err != nil {
		respondError(w, err, "split")
		return
	}

	out := make([]SplitParticipantPayload, len(preview.Participants))
	for i, p := range preview.Participants {
		out[i] = SplitParticipantPayload{
			ID:         p.ID,
			Name:       p.Name,
			Amount:     p.Amount,
			Percentage: p.Percentage,
		}
	}
	writeJSON(w, http.StatusOK, SplitPreviewResponse{Participants: out, Valid: preview.Valid})
}

// --- mapping helpers --------------------------------------------------------

func dayPlanToResponse(plan planner.DayPlan) DayPlanResponse {
	resp := DayPlanResponse{Days: make([]DayResponse, len(plan.Days))}
	for i, d := range plan.Days {
		items := make([]PlacedItemResponse, len(d.Items))
		for j, it := range d.Items {
			items[j] = PlacedItemResponse{
				ItineraryItemResponse: itineraryItemToResponse(it.ItineraryItem),
				OutOfRange:            it.OutOfRange,
			}
		}
		resp.Days[i] = DayResponse{
			Number: d.Number,
			Date:   openapi_types.Date{Time: d.Date},
			Items:  items,
		}
	}
	for _, it := range plan.OutOfRange {
		resp.OutOfRangeItemIDs = append(resp.OutOfRangeItemIDs, it.ID)
	}
	return resp
}

func budgetReportToResponse(report service.BudgetReport) BudgetResponse {
	categories := make([]CategoryTotalResponse, len(report.Categories))
	for i, c := range report.Categories {
		categories[i] = CategoryTotalResponse{Category: c.Category, Total: c.Total}
	}
	return BudgetResponse{
		Spent:        report.Summary.Spent,
		Remaining:    report.Summary.Remaining,
		PercentUsed:  report.Summary.PercentUsed,
		OverBudget:   report.Summary.OverBudget,
		NearLimit:    report.Summary.NearLimit,
		CurrencyCode: report.CurrencyCode,
		Categories:   categories,
	}
}
