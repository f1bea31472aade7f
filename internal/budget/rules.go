package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// Violation kinds.
const (
	ViolationMaxAmount     = "max_amount"
	ViolationMaxPercentage = "max_percentage"
)

// Candidate is a not-yet-committed transaction being evaluated.
type Candidate struct {
	Type        string
	Category    string
	Amount      decimal.Decimal
	Description string
}

// RuleViolation is a single breach of a budget rule. Blocking violations
// refuse the transaction outright; advisory ones require explicit user
// confirmation.
type RuleViolation struct {
	RuleID     int
	RuleName   string
	Kind       string
	Message    string
	IsBlocking bool
}

// CheckRules evaluates a candidate transaction against all active rules.
// Non-expense candidates never violate rules. A rule with no category
// applies globally; otherwise it applies when the candidate's category rolls
// up into the rule's budget category. One rule can emit one violation per
// configured threshold.
func CheckRules(c Candidate, rules []models.BudgetRule, statuses []Status) []RuleViolation {
	if c.Type != models.TransactionTypeExpense {
		return nil
	}

	budgetCategory, tracked := models.BudgetCategoryFor(c.Category)

	var violations []RuleViolation
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if rule.Category != nil && (!tracked || *rule.Category != budgetCategory) {
			continue
		}

		// Boundary is exclusive: an amount equal to the cap passes.
		if rule.MaxAmount != nil && c.Amount.GreaterThan(*rule.MaxAmount) {
			violations = append(violations, RuleViolation{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Kind:     ViolationMaxAmount,
				Message: fmt.Sprintf("amount %s exceeds the %s cap of %s",
					c.Amount.StringFixed(2), rule.Name, rule.MaxAmount.StringFixed(2)),
				IsBlocking: rule.Strictness == models.StrictnessStrict,
			})
		}

		if rule.MaxPercentage != nil && tracked {
			if status, ok := StatusFor(statuses, budgetCategory); ok && status.Budget.Limit.Sign() > 0 {
				wouldBe := status.Spent.Add(c.Amount).
					Div(status.Budget.Limit).
					Mul(decimal.NewFromInt(100)).
					InexactFloat64()
				if wouldBe > *rule.MaxPercentage {
					violations = append(violations, RuleViolation{
						RuleID:   rule.ID,
						RuleName: rule.Name,
						Kind:     ViolationMaxPercentage,
						Message: fmt.Sprintf("would put the %s budget at %.1f%%, over the %s limit of %.0f%%",
							budgetCategory, wouldBe, rule.Name, *rule.MaxPercentage),
						IsBlocking: rule.Strictness == models.StrictnessStrict,
					})
				}
			}
		}
	}
	return violations
}

// HasBlocking reports whether any violation in the list is blocking.
func HasBlocking(violations []RuleViolation) bool {
	for _, v := range violations {
		if v.IsBlocking {
			return true
		}
	}
	return false
}
