package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per expense, with trip fields
// repeated for every expense on that trip. Trips with no expenses yield one
// row with zero values for all expense fields.
type ExportRow struct {
	// Trip fields — repeated for every expense on the trip.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string
	TripBudget    string // empty string when no budget is set
	TripCurrency  string

	// Expense fields — zero values when the trip has no expenses.
	ExpenseTitle    string
	ExpenseAmount   string // decimal string, empty when the row has no expense
	ExpenseCategory string
	ExpenseDate     string // "2006-01-02" formatted date, empty when absent
	ExpenseCurrency string
	ExpenseNotes    string
}
