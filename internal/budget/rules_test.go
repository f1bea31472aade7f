package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gitlab.com/aungkh/finhabit/internal/models"
)

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func capRule(strictness string, maxAmount float64) models.BudgetRule {
	return models.BudgetRule{
		ID:         1,
		Name:       "per-transaction cap",
		MaxAmount:  decPtr(maxAmount),
		Strictness: strictness,
		IsActive:   true,
	}
}

func TestCheckRules(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	candidate := func(amount float64) Candidate {
		return Candidate{
			Type:     models.TransactionTypeExpense,
			Category: models.CategoryFood,
			Amount:   decimal.NewFromFloat(amount),
		}
	}

	t.Run("strict rule blocks just over the cap", func(t *testing.T) {
		t.Parallel()
		violations := CheckRules(candidate(100.01), []models.BudgetRule{capRule(models.StrictnessStrict, 100)}, nil)
		require.Len(t, violations, 1)
		require.Equal(t, ViolationMaxAmount, violations[0].Kind)
		require.True(t, violations[0].IsBlocking)
		require.True(t, HasBlocking(violations))
	})

	t.Run("amount exactly at the cap passes", func(t *testing.T) {
		t.Parallel()
		violations := CheckRules(candidate(100.00), []models.BudgetRule{capRule(models.StrictnessStrict, 100)}, nil)
		require.Empty(t, violations)
	})

	t.Run("flexible rule violates without blocking", func(t *testing.T) {
		t.Parallel()
		violations := CheckRules(candidate(100.01), []models.BudgetRule{capRule(models.StrictnessFlexible, 100)}, nil)
		require.Len(t, violations, 1)
		require.False(t, violations[0].IsBlocking)
		require.False(t, HasBlocking(violations))
	})

	t.Run("inactive rules are skipped", func(t *testing.T) {
		t.Parallel()
		rule := capRule(models.StrictnessStrict, 100)
		rule.IsActive = false
		require.Empty(t, CheckRules(candidate(500), []models.BudgetRule{rule}, nil))
	})

	t.Run("income candidates never violate", func(t *testing.T) {
		t.Parallel()
		c := candidate(500)
		c.Type = models.TransactionTypeIncome
		require.Empty(t, CheckRules(c, []models.BudgetRule{capRule(models.StrictnessStrict, 100)}, nil))
	})

	t.Run("category rule only applies to its budget category", func(t *testing.T) {
		t.Parallel()
		rule := capRule(models.StrictnessStrict, 100)
		rule.Category = strPtr(models.BudgetCategoryTravel)

		require.Empty(t, CheckRules(candidate(500), []models.BudgetRule{rule}, nil))

		travel := candidate(500)
		travel.Category = models.CategoryTravel
		require.Len(t, CheckRules(travel, []models.BudgetRule{rule}, nil), 1)
	})

	t.Run("max percentage uses the would-be spend", func(t *testing.T) {
		t.Parallel()
		rule := models.BudgetRule{
			ID:            2,
			Name:          "keep groceries under half",
			Category:      strPtr(models.BudgetCategoryGroceries),
			MaxPercentage: floatPtr(50),
			Strictness:    models.StrictnessModerate,
			IsActive:      true,
		}
		statuses := ComputeAll(
			[]models.Budget{groceriesBudget(200)},
			[]models.Transaction{expenseOn(models.CategoryFood, 90, now)},
			now,
		)

		// 90 + 20 = 110 -> 55% of 200, over the 50% cap.
		violations := CheckRules(candidate(20), []models.BudgetRule{rule}, statuses)
		require.Len(t, violations, 1)
		require.Equal(t, ViolationMaxPercentage, violations[0].Kind)
		require.False(t, violations[0].IsBlocking)

		// 90 + 10 = 100 -> exactly 50%, boundary is exclusive.
		require.Empty(t, CheckRules(candidate(10), []models.BudgetRule{rule}, statuses))
	})

	t.Run("one rule can emit both violation kinds", func(t *testing.T) {
		t.Parallel()
		rule := models.BudgetRule{
			ID:            3,
			Name:          "grocery guard",
			Category:      strPtr(models.BudgetCategoryGroceries),
			MaxAmount:     decPtr(50),
			MaxPercentage: floatPtr(50),
			Strictness:    models.StrictnessStrict,
			IsActive:      true,
		}
		statuses := ComputeAll([]models.Budget{groceriesBudget(100)}, nil, now)

		violations := CheckRules(candidate(60), []models.BudgetRule{rule}, statuses)
		require.Len(t, violations, 2)
		kinds := []string{violations[0].Kind, violations[1].Kind}
		require.Contains(t, kinds, ViolationMaxAmount)
		require.Contains(t, kinds, ViolationMaxPercentage)
	})

	t.Run("percentage rule without a matching budget is skipped", func(t *testing.T) {
		t.Parallel()
		rule := models.BudgetRule{
			ID:            4,
			Name:          "global percentage",
			MaxPercentage: floatPtr(10),
			Strictness:    models.StrictnessStrict,
			IsActive:      true,
		}
		require.Empty(t, CheckRules(candidate(1000), []models.BudgetRule{rule}, nil))
	})
}
