package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// BudgetInput is the caller-supplied part of a new budget.
type BudgetInput struct {
	Category  string
	Name      string
	Limit     decimal.Decimal
	Period    string
	StartDate time.Time
	Color     string
}

// AddBudget validates and records a budget.
func (s *Service) AddBudget(ctx context.Context, in BudgetInput) (*models.Budget, error) {
	if strings.TrimSpace(in.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if in.Limit.Sign() <= 0 {
		return nil, &ValidationError{Field: "limit", Reason: "must be positive"}
	}
	if in.Period != models.BudgetPeriodWeekly && in.Period != models.BudgetPeriodMonthly {
		return nil, &ValidationError{Field: "period", Reason: "must be weekly or monthly"}
	}
	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	b := &models.Budget{
		UserID:    s.userID,
		Category:  in.Category,
		Name:      in.Name,
		Limit:     in.Limit,
		Period:    in.Period,
		StartDate: startDate,
		Color:     in.Color,
	}
	if err := s.store.CreateBudget(ctx, b); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist budget")
		return nil, fmt.Errorf("failed to persist budget: %w", err)
	}
	s.state.Budgets = append(s.state.Budgets, *b)
	return b, nil
}

// DeleteBudget removes a budget by ID.
func (s *Service) DeleteBudget(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Budgets, func(b models.Budget) bool { return b.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeleteBudget(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("budget_id", id).Msg("Failed to delete budget")
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.state.Budgets = slices.Delete(s.state.Budgets, idx, idx+1)
	return nil
}

// BudgetRuleInput is the caller-supplied part of a new budget rule.
// Category nil applies the rule to every budget category.
type BudgetRuleInput struct {
	Name          string
	Description   string
	Category      *string
	MaxAmount     *decimal.Decimal
	MaxPercentage *float64
	Strictness    string
}

// AddBudgetRule validates and records a rule. New rules start active.
func (s *Service) AddBudgetRule(ctx context.Context, in BudgetRuleInput) (*models.BudgetRule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.MaxAmount == nil && in.MaxPercentage == nil {
		return nil, &ValidationError{Field: "rule", Reason: "at least one of maxAmount or maxPercentage is required"}
	}
	if in.MaxAmount != nil && in.MaxAmount.Sign() <= 0 {
		return nil, &ValidationError{Field: "maxAmount", Reason: "must be positive"}
	}
	if in.MaxPercentage != nil && *in.MaxPercentage <= 0 {
		return nil, &ValidationError{Field: "maxPercentage", Reason: "must be positive"}
	}
	switch in.Strictness {
	case models.StrictnessFlexible, models.StrictnessModerate, models.StrictnessStrict:
	default:
		return nil, &ValidationError{Field: "strictness", Reason: "must be flexible, moderate, or strict"}
	}

	rule := &models.BudgetRule{
		UserID:        s.userID,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		MaxAmount:     in.MaxAmount,
		MaxPercentage: in.MaxPercentage,
		Strictness:    in.Strictness,
		IsActive:      true,
	}
	if err := s.store.CreateBudgetRule(ctx, rule); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist budget rule")
		return nil, fmt.Errorf("failed to persist budget rule: %w", err)
	}
	s.state.Rules = append(s.state.Rules, *rule)
	return rule, nil
}

// SetBudgetRuleActive toggles a rule on or off.
func (s *Service) SetBudgetRuleActive(ctx context.Context, id int, active bool) error {
	idx := slices.IndexFunc(s.state.Rules, func(r models.BudgetRule) bool { return r.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.SetBudgetRuleActive(ctx, id, active); err != nil {
		logger.Log.Error().Err(err).Int("rule_id", id).Msg("Failed to toggle budget rule")
		return fmt.Errorf("failed to toggle budget rule: %w", err)
	}
	s.state.Rules[idx].IsActive = active
	return nil
}

// DeleteBudgetRule removes a rule by ID.
func (s *Service) DeleteBudgetRule(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Rules, func(r models.BudgetRule) bool { return r.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeleteBudgetRule(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("rule_id", id).Msg("Failed to delete budget rule")
		return fmt.Errorf("failed to delete budget rule: %w", err)
	}
	s.state.Rules = slices.Delete(s.state.Rules, idx, idx+1)
	return nil
}

// SavingsGoalInput is the caller-supplied part of a new savings goal.
type SavingsGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Color        string
}

// AddSavingsGoal validates and records a savings goal.
func (s *Service) AddSavingsGoal(ctx context.Context, in SavingsGoalInput) (*models.SavingsGoal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.TargetAmount.Sign() <= 0 {
		return nil, &ValidationError{Field: "targetAmount", Reason: "must be positive"}
	}

	g := &models.SavingsGoal{
		UserID:        s.userID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      in.Deadline,
		Color:         in.Color,
	}
	if err := s.store.CreateSavingsGoal(ctx, g); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist savings goal")
		return nil, fmt.Errorf("failed to persist savings goal: %w", err)
	}
	s.state.Goals = append(s.state.Goals, *g)
	return g, nil
}

// AddToSavingsGoal increases a goal's saved amount.
func (s *Service) AddToSavingsGoal(ctx context.Context, id int, amount decimal.Decimal) (*models.SavingsGoal, error) {
	if amount.Sign() <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	idx := slices.IndexFunc(s.state.Goals, func(g models.SavingsGoal) bool { return g.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}

	updated := s.state.Goals[idx]
	updated.CurrentAmount = updated.CurrentAmount.Add(amount)
	if err := s.store.UpdateSavingsGoal(ctx, &updated); err != nil {
		logger.Log.Error().Err(err).Int("goal_id", id).Msg("Failed to persist savings goal update")
		return nil, fmt.Errorf("failed to persist savings goal update: %w", err)
	}
	s.state.Goals[idx] = updated
	return &updated, nil
}
