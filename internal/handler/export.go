// Package handler — export.go implements GET /export.
// Returns all trips and their expenses as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date",
	"trip_budget", "trip_currency",
	"expense_title", "expense_amount", "expense_category", "expense_date",
	"expense_currency", "expense_notes",
}

// ExportRowResponse is the JSON shape of one export row.
// Empty optional fields are omitted.
type ExportRowResponse struct {
	TripID        string `json:"trip_id"`
	TripName      string `json:"trip_name"`
	TripStartDate string `json:"trip_start_date"`
	TripEndDate   string `json:"trip_end_date"`
	TripBudget    string `json:"trip_budget,omitempty"`
	TripCurrency  string `json:"trip_currency"`

	ExpenseTitle    string `json:"expense_title,omitempty"`
	ExpenseAmount   string `json:"expense_amount,omitempty"`
	ExpenseCategory string `json:"expense_category,omitempty"`
	ExpenseDate     string `json:"expense_date,omitempty"`
	ExpenseCurrency string `json:"expense_currency,omitempty"`
	ExpenseNotes    string `json:"expense_notes,omitempty"`
}

// handleExport handles GET /export.
// It returns a flat table of every trip and expense combination.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondError(w, err, "export")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rows)
		return
	}

	out := make([]ExportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ExportRowResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSVExport encodes the rows as CSV with a fixed header row.
func writeCSVExport(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer writes never fail.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.TripID, r.TripName, r.TripStartDate, r.TripEndDate,
			r.TripBudget, r.TripCurrency,
			r.ExpenseTitle, r.ExpenseAmount, r.ExpenseCategory, r.ExpenseDate,
			r.ExpenseCurrency, r.ExpenseNotes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", `attachment; filename="itinero-export.csv"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck — nothing useful to do if the client went away mid-write.
	w.Write(buf.Bytes())
}
