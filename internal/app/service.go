package app

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// State holds the in-memory snapshot of every entity collection. It mirrors
// the external store: mutations land here only after the corresponding
// persistence call has succeeded.
type State struct {
	Transactions []models.Transaction
	Budgets      []models.Budget
	Rules        []models.BudgetRule
	Planned      []models.PlannedTransaction
	Habits       []models.Habit
	Activities   []models.Activity
	Goals        []models.SavingsGoal
	Suggestions  []models.Suggestion
}

// Service owns the application state for one user and exposes the mutating
// operations and read projections. All core computations are synchronous;
// the only suspension points are the store calls.
type Service struct {
	userID  string
	store   Store
	advisor Advisor
	state   State
	now     func() time.Time

	// isOptimizing guards against overlapping suggestion requests. It is
	// advisory only; there is exactly one writer.
	isOptimizing bool
}

// NewService creates a Service for one user over a store.
func NewService(userID string, store Store) *Service {
	return &Service{
		userID: userID,
		store:  store,
		now:    time.Now,
	}
}

// SetAdvisor wires in the AI suggestion collaborator.
func (s *Service) SetAdvisor(a Advisor) {
	s.advisor = a
}

// SetClock overrides the service clock. Used in tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// State returns the current in-memory snapshot.
func (s *Service) State() State {
	return s.state
}

// Load replaces the in-memory collections with the store's contents.
func (s *Service) Load(ctx context.Context) error {
	transactions, err := s.store.ListTransactions(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	budgets, err := s.store.ListBudgets(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}
	rules, err := s.store.ListBudgetRules(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load budget rules: %w", err)
	}
	planned, err := s.store.ListPlannedTransactions(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load planned transactions: %w", err)
	}
	habits, err := s.store.ListHabits(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	activities, err := s.store.ListActivities(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	goals, err := s.store.ListSavingsGoals(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load savings goals: %w", err)
	}

	s.state = State{
		Transactions: transactions,
		Budgets:      budgets,
		Rules:        rules,
		Planned:      planned,
		Habits:       habits,
		Activities:   activities,
		Goals:        goals,
	}

	logger.Log.Info().
		Str("user_hash", logger.HashUserID(s.userID)).
		Int("transactions", len(transactions)).
		Int("budgets", len(budgets)).
		Int("rules", len(rules)).
		Int("planned", len(planned)).
		Int("habits", len(habits)).
		Msg("State loaded from store")

	return nil
}
