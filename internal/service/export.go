package service

import (
	"context"
	"fmt"

	"github.com/itinero-app/itinero/backend/internal/domain"
	"github.com/itinero-app/itinero/backend/internal/repo"
)

// dateLayout is the wire format for date-only fields in export rows.
const dateLayout = "2006-01-02"

// ExportService assembles a full flat export of all trips and their expenses.
type ExportService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExportService {
	return &ExportService{trips: trips, expenses: expenses}
}

// Export returns one ExportRow per expense across all trips.
// Trips with no expenses contribute one row with empty expense fields, so
// every trip appears in the export even before any spending is logged.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		expenses, err := s.expenses.ListByTripID(ctx, trip.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: trip %s: %w", trip.ID, err)
		}

		if len(expenses) == 0 {
			rows = append(rows, tripRow(trip))
			continue
		}
		for _, e := range expenses {
			row := tripRow(trip)
			row.ExpenseTitle = e.Title
			row.ExpenseAmount = e.Amount.String()
			row.ExpenseCategory = e.Category
			row.ExpenseDate = e.Date.Format(dateLayout)
			row.ExpenseCurrency = e.CurrencyCode
			row.ExpenseNotes = e.Notes
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// tripRow builds an ExportRow with only the trip fields populated.
func tripRow(trip domain.Trip) domain.ExportRow {
	row := domain.ExportRow{
		TripID:        trip.ID.String(),
		TripName:      trip.Name,
		TripStartDate: trip.StartDate.Format(dateLayout),
		TripEndDate:   trip.EndDate.Format(dateLayout),
		TripCurrency:  trip.CurrencyCode,
	}
	if trip.Budget != nil {
		row.TripBudget = trip.Budget.String()
	}
	return row
}
