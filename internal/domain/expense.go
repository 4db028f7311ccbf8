package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents money spent on a trip.
// Amount is validated non-negative at entry time (service layer); the budget
// aggregator sums whatever it is handed without re-checking sign.
type Expense struct {
	ID       uuid.UUID
	TripID   uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	// CurrencyCode is the ISO 4217 code the amount was entered in.
	// Conversion and formatting are the client's job.
	CurrencyCode string
	Notes        string
	// ReceiptRef is an opaque reference to a scanned receipt held by an
	// external document store; empty when no receipt is attached.
	ReceiptRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
