// Package budget derives budget spend, status tiers, what-if impact
// projections, and rule violations. Every function is a pure computation
// over the supplied collections and clock; nothing here mutates state.
package budget

import (
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// Status tiers, exclusive and in priority order.
const (
	TierSafe     = "safe"
	TierWarning  = "warning"
	TierDanger   = "danger"
	TierExceeded = "exceeded"
)

// Percentage-used thresholds for the warning and danger tiers.
const (
	warningThreshold = 70.0
	dangerThreshold  = 90.0
)

// Status is the derived state of a single budget at a point in time.
// ProjectedEnd is a linear month-end extrapolation for forecast display
// only; it never feeds blocking decisions.
type Status struct {
	Budget         models.Budget
	Spent          decimal.Decimal
	PercentageUsed float64
	Remaining      decimal.Decimal
	Tier           string
	DaysRemaining  int
	ProjectedEnd   decimal.Decimal
}

// Compute derives the status of one budget from the transaction list.
// The active window is [first day of the current month, now] for monthly
// budgets and [now-7d, now] for weekly ones.
func Compute(b models.Budget, transactions []models.Transaction, now time.Time) Status {
	windowStart := periodStart(b.Period, now)

	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		bc, ok := models.BudgetCategoryFor(tx.Category)
		if !ok || bc != b.Category {
			continue
		}
		if tx.Date.Before(windowStart) || tx.Date.After(now) {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	remaining := b.Limit.Sub(spent)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	pct := percentageUsed(spent, b.Limit)

	daysInMonth := daysIn(now)
	daysPassed := now.Day()
	projected := spent.
		Div(decimal.NewFromInt(int64(daysPassed))).
		Mul(decimal.NewFromInt(int64(daysInMonth)))

	return Status{
		Budget:         b,
		Spent:          spent,
		PercentageUsed: pct,
		Remaining:      remaining,
		Tier:           tierFor(spent, b.Limit, pct),
		DaysRemaining:  daysInMonth - daysPassed,
		ProjectedEnd:   projected,
	}
}

// ComputeAll derives statuses for every budget.
func ComputeAll(budgets []models.Budget, transactions []models.Transaction, now time.Time) []Status {
	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, Compute(b, transactions, now))
	}
	return statuses
}

// StatusFor finds the status for a budget category.
func StatusFor(statuses []Status, category string) (Status, bool) {
	for _, s := range statuses {
		if s.Budget.Category == category {
			return s, true
		}
	}
	return Status{}, false
}

// percentageUsed returns spent/limit*100, or 0 when the limit is not positive.
func percentageUsed(spent, limit decimal.Decimal) float64 {
	if limit.Sign() <= 0 {
		return 0
	}
	return spent.Div(limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// tierFor classifies a budget into exactly one tier.
func tierFor(spent, limit decimal.Decimal, pct float64) string {
	switch {
	case spent.GreaterThan(limit):
		return TierExceeded
	case pct >= dangerThreshold:
		return TierDanger
	case pct >= warningThreshold:
		return TierWarning
	default:
		return TierSafe
	}
}

// periodStart returns the start of the active window for a budget period.
func periodStart(period string, now time.Time) time.Time {
	if period == models.BudgetPeriodWeekly {
		return now.AddDate(0, 0, -7)
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// daysIn returns the number of days in the month containing t.
func daysIn(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
