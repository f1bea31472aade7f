package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/advisor"
	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
	"gitlab.com/aungkh/finhabit/internal/summary"
)

// Advisor is the AI suggestion collaborator.
type Advisor interface {
	Suggest(ctx context.Context, req advisor.Request) ([]advisor.Suggestion, error)
}

// OptimizeSuggestions asks the advisor for optimization suggestions built
// from the current state. Only one request runs at a time; the guard is an
// advisory flag, not a lock, since there is a single caller. Each received
// suggestion gets a generated id and starts unimplemented.
func (s *Service) OptimizeSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	if s.advisor == nil {
		return nil, fmt.Errorf("no advisor configured")
	}
	if s.isOptimizing {
		return nil, ErrOptimizeInFlight
	}
	s.isOptimizing = true
	defer func() { s.isOptimizing = false }()

	raw, err := s.advisor.Suggest(ctx, s.buildAdvisorRequest())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to generate suggestions")
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	now := s.now()
	suggestions := make([]models.Suggestion, 0, len(raw))
	for _, sg := range raw {
		suggestions = append(suggestions, models.Suggestion{
			ID:                       uuid.NewString(),
			Type:                     sg.Type,
			Priority:                 sg.Priority,
			Title:                    sg.Title,
			Description:              sg.Description,
			PotentialSavings:         decimalFromFloat(sg.PotentialSavings),
			PotentialIncome:          decimalFromFloat(sg.PotentialIncome),
			Category:                 sg.Category,
			ImplementationDifficulty: sg.ImplementationDifficulty,
			Timeframe:                sg.Timeframe,
			ActionItems:              sg.ActionItems,
			Implemented:              false,
			CreatedAt:                now,
		})
	}
	s.state.Suggestions = suggestions

	logger.Log.Info().Int("count", len(suggestions)).Msg("Suggestions received")
	return suggestions, nil
}

// MarkSuggestionImplemented flags a received suggestion as done.
func (s *Service) MarkSuggestionImplemented(id string) error {
	for i := range s.state.Suggestions {
		if s.state.Suggestions[i].ID == id {
			s.state.Suggestions[i].Implemented = true
			return nil
		}
	}
	return ErrNotFound
}

// buildAdvisorRequest aggregates the state into the context the advisor
// consumes. Only aggregates leave the device, never raw descriptions.
func (s *Service) buildAdvisorRequest() advisor.Request {
	fin := summary.Financial(s.state.Transactions, s.state.Goals, s.now())

	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range s.state.Transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
	}
	spending := make(map[string]string, len(byCategory))
	for category, total := range byCategory {
		spending[category] = total.StringFixed(2)
	}

	goals := make([]advisor.GoalContext, 0, len(s.state.Goals))
	for _, g := range s.state.Goals {
		goals = append(goals, advisor.GoalContext{
			Name:          g.Name,
			TargetAmount:  g.TargetAmount.StringFixed(2),
			CurrentAmount: g.CurrentAmount.StringFixed(2),
		})
	}

	return advisor.Request{
		TotalIncome:        fin.TotalIncome.StringFixed(2),
		TotalExpenses:      fin.TotalExpenses.StringFixed(2),
		SavingsRate:        fin.SavingsRate,
		TransactionCount:   fin.TransactionCount,
		SpendingByCategory: spending,
		Goals:              goals,
	}
}

func decimalFromFloat(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
