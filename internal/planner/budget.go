package planner

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// nearLimitThreshold is the percentage of budget above which a trip is
// flagged as nearing its limit. Fixed policy; drives warning color/copy in
// clients.
var nearLimitThreshold = decimal.NewFromInt(80)

// uncategorizedLabel groups expenses whose category is blank.
const uncategorizedLabel = "Uncategorized"

// BudgetSummary is the derived budget health of a trip.
// Remaining and PercentUsed are nil when the trip has no positive budget, so
// clients cannot mistake "no budget set" for "0% used".
type BudgetSummary struct {
	Spent       decimal.Decimal
	Remaining   *decimal.Decimal
	PercentUsed *decimal.Decimal
	OverBudget  bool
	NearLimit   bool
}

// CategoryTotal is one category's summed spend.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// AggregateBudget sums the expenses and classifies budget health against the
// optional budget ceiling.
//
// Spent is always computed. When budget is nil or not positive, the remaining
// fields stay nil/false. Otherwise Remaining may be negative, PercentUsed is
// spent/budget×100, OverBudget means spent exceeds budget, and NearLimit
// means usage is past the warning threshold without being over.
//
// Amount signs are not validated here; expense entry is where sign rules live.
func AggregateBudget(budget *decimal.Decimal, expenses []domain.Expense) BudgetSummary {
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}

	summary := BudgetSummary{Spent: spent}
	if budget == nil || !budget.IsPositive() {
		return summary
	}

	remaining := budget.Sub(spent)
	percent := spent.Div(*budget).Mul(decimal.NewFromInt(100))
	summary.Remaining = &remaining
	summary.PercentUsed = &percent
	summary.OverBudget = spent.GreaterThan(*budget)
	summary.NearLimit = percent.GreaterThan(nearLimitThreshold) && !summary.OverBudget
	return summary
}

// CategoryBreakdown groups expenses by category label and sums each group.
// Blank categories group under "Uncategorized". The result is ordered by
// summed amount descending, then category name ascending — clients render
// charts and legends straight from this order, so it must be deterministic.
func CategoryBreakdown(expenses []domain.Expense) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = uncategorizedLabel
		}
		totals[cat] = totals[cat].Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
