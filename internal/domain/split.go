package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitStrategy selects how an expense total is divided among participants.
type SplitStrategy string

const (
	// SplitEqual divides the total evenly across all participants.
	SplitEqual SplitStrategy = "equal"
	// SplitPercentage divides the total by each participant's percentage
	// weight relative to the sum of all percentages.
	SplitPercentage SplitStrategy = "percentage"
	// SplitCustom leaves caller-supplied amounts untouched; only the
	// reconciliation check applies.
	SplitCustom SplitStrategy = "custom"
)

// Valid reports whether s is one of the known strategies.
func (s SplitStrategy) Valid() bool {
	switch s {
	case SplitEqual, SplitPercentage, SplitCustom:
		return true
	}
	return false
}

// SplitParticipant is one person's share of a split expense.
// Participants are transient: they exist only for the duration of a
// split-editing session and are never persisted by this service.
type SplitParticipant struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
	// Percentage is the participant's weight under SplitPercentage;
	// nil (treated as zero) under every other strategy.
	Percentage *decimal.Decimal
}
