package budget

import (
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// Impact is a what-if projection of a candidate expense onto its budget.
// It is computed before the user confirms a transaction and never mutates
// stored state.
type Impact struct {
	BudgetID       int
	BudgetName     string
	BudgetCategory string
	CurrentSpent   decimal.Decimal
	NewSpent       decimal.Decimal
	Limit          decimal.Decimal
	NewPercentage  float64
	NewRemaining   decimal.Decimal
	CurrentTier    string
	NewTier        string
	WillExceed     bool
	RuleViolations []RuleViolation
}

// EvaluateImpact projects a candidate transaction onto the budget it maps
// to. It returns nil when the candidate is not an expense, its category is
// not budget-tracked, or no budget exists for the mapped category. Rule
// violations are checked and attached either way the budget leans.
func EvaluateImpact(
	c Candidate,
	budgets []models.Budget,
	rules []models.BudgetRule,
	transactions []models.Transaction,
	now time.Time,
) *Impact {
	if c.Type != models.TransactionTypeExpense {
		return nil
	}
	budgetCategory, ok := models.BudgetCategoryFor(c.Category)
	if !ok {
		return nil
	}

	statuses := ComputeAll(budgets, transactions, now)
	status, ok := StatusFor(statuses, budgetCategory)
	if !ok {
		return nil
	}

	newSpent := status.Spent.Add(c.Amount)
	newRemaining := status.Budget.Limit.Sub(newSpent)
	if newRemaining.Sign() < 0 {
		newRemaining = decimal.Zero
	}
	newPct := percentageUsed(newSpent, status.Budget.Limit)

	return &Impact{
		BudgetID:       status.Budget.ID,
		BudgetName:     status.Budget.Name,
		BudgetCategory: budgetCategory,
		CurrentSpent:   status.Spent,
		NewSpent:       newSpent,
		Limit:          status.Budget.Limit,
		NewPercentage:  newPct,
		NewRemaining:   newRemaining,
		CurrentTier:    status.Tier,
		NewTier:        tierFor(newSpent, status.Budget.Limit, newPct),
		WillExceed:     newSpent.GreaterThan(status.Budget.Limit),
		RuleViolations: CheckRules(c, rules, statuses),
	}
}
