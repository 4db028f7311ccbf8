package planner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// SplitSession models an in-progress split-editing flow for a single expense.
// It holds the transient participant list and recomputes shares as the user
// adds or removes people, switches strategy, or edits a share. There is no
// committed state here: persisting a finished split is the caller's job,
// gated on Valid.
//
// A session is not safe for concurrent use; each editing flow owns its own.
type SplitSession struct {
	total        decimal.Decimal
	strategy     domain.SplitStrategy
	participants []domain.SplitParticipant
}

// NewSplitSession starts a session for splitting total under the given
// strategy, with no participants yet.
func NewSplitSession(total decimal.Decimal, strategy domain.SplitStrategy) *SplitSession {
	return &SplitSession{total: total, strategy: strategy}
}

// AddParticipant appends a participant and recomputes shares under the equal
// and percentage strategies. Under custom the new participant starts at zero
// and existing amounts are untouched.
func (s *SplitSession) AddParticipant(name string) domain.SplitParticipant {
	p := domain.SplitParticipant{ID: uuid.New(), Name: name}
	s.participants = append(s.participants, p)
	s.recompute()
	return p
}

// RemoveParticipant drops the participant with the given ID.
// Under equal and percentage the remaining shares are redistributed; under
// custom the contribution is simply dropped with no redistribution, so the
// caller must re-check Valid afterward.
func (s *SplitSession) RemoveParticipant(id uuid.UUID) {
	for i, p := range s.participants {
		if p.ID == id {
			s.participants = append(s.participants[:i], s.participants[i+1:]...)
			break
		}
	}
	s.recompute()
}

// SetStrategy switches the split strategy and recomputes shares.
// Switching to custom keeps whatever amounts the previous strategy produced
// as the starting point for manual edits.
func (s *SplitSession) SetStrategy(strategy domain.SplitStrategy) {
	s.strategy = strategy
	s.recompute()
}

// SetAmount overwrites one participant's amount. Meaningful under the custom
// strategy only; under equal/percentage the next recompute overwrites it.
func (s *SplitSession) SetAmount(id uuid.UUID, amount decimal.Decimal) {
	for i := range s.participants {
		if s.participants[i].ID == id {
			s.participants[i].Amount = amount
			return
		}
	}
}

// SetPercentage overwrites one participant's percentage weight and recomputes
// shares. Meaningful under the percentage strategy only.
func (s *SplitSession) SetPercentage(id uuid.UUID, percentage decimal.Decimal) {
	for i := range s.participants {
		if s.participants[i].ID == id {
			s.participants[i].Percentage = &percentage
			break
		}
	}
	s.recompute()
}

// Participants returns the current participant list with computed amounts.
func (s *SplitSession) Participants() []domain.SplitParticipant {
	out := make([]domain.SplitParticipant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Valid reports whether the current amounts reconcile with the session total.
func (s *SplitSession) Valid() bool {
	return ValidSplit(s.total, s.participants)
}

func (s *SplitSession) recompute() {
	s.participants = ComputeSplit(s.total, s.participants, s.strategy)
}
