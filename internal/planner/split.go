package planner

import (
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// reconcileEpsilon is the tolerance under which a split's participant amounts
// are considered to reconcile with the expense total. Equal splits do not
// distribute leftover cents ($100 over three people is 33.33 each, summing to
// 99.99), so validity is tolerance-based rather than exact by design of the
// user-visible validation rule.
var reconcileEpsilon = decimal.RequireFromString("0.01")

// ComputeSplit returns a copy of participants with each Amount populated
// according to the strategy. The input slice is never mutated.
//
//   - equal: every participant gets total divided by the participant count.
//   - percentage: each gets total × (percentage / sum of all percentages).
//     A zero percentage sum leaves amounts unchanged — a no-op, not an error.
//   - custom: amounts are caller-supplied and returned untouched.
func ComputeSplit(total decimal.Decimal, participants []domain.SplitParticipant, strategy domain.SplitStrategy) []domain.SplitParticipant {
	out := make([]domain.SplitParticipant, len(participants))
	copy(out, participants)

	switch strategy {
	case domain.SplitEqual:
		if len(out) == 0 {
			return out
		}
		share := total.Div(decimal.NewFromInt(int64(len(out))))
		for i := range out {
			out[i].Amount = share
		}
	case domain.SplitPercentage:
		sum := decimal.Zero
		for _, p := range out {
			if p.Percentage != nil {
				sum = sum.Add(*p.Percentage)
			}
		}
		if sum.IsZero() {
			return out
		}
		for i := range out {
			pct := decimal.Zero
			if out[i].Percentage != nil {
				pct = *out[i].Percentage
			}
			out[i].Amount = total.Mul(pct).Div(sum)
		}
	case domain.SplitCustom:
		// Amounts are authoritative as supplied; only ValidSplit applies.
	}

	return out
}

// ValidSplit reports whether the participant amounts reconcile with total:
// the participant list is non-empty and the absolute difference between the
// summed amounts and the total is under 0.01 currency units.
func ValidSplit(total decimal.Decimal, participants []domain.SplitParticipant) bool {
	if len(participants) == 0 {
		return false
	}
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.Amount)
	}
	return sum.Sub(total).Abs().LessThan(reconcileEpsilon)
}
