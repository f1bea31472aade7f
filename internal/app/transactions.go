package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/budget"
	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
	"gitlab.com/aungkh/finhabit/internal/summary"
)

// TransactionInput is the caller-supplied part of a new transaction.
// A zero Date means "now".
type TransactionInput struct {
	Type        string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Notes       string
}

// AddTransaction validates, rule-checks, persists, and records a
// transaction. Blocking rule violations refuse it outright. Advisory
// violations require confirmWarnings; the confirmation bypasses no
// blocking check.
func (s *Service) AddTransaction(ctx context.Context, in TransactionInput, confirmWarnings bool) (*models.Transaction, error) {
	if err := validateTransactionInput(in); err != nil {
		return nil, err
	}

	now := s.now()
	candidate := budget.Candidate{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
	}
	statuses := budget.ComputeAll(s.state.Budgets, s.state.Transactions, now)
	violations := budget.CheckRules(candidate, s.state.Rules, statuses)
	if budget.HasBlocking(violations) {
		logger.Log.Info().
			Str("user_hash", logger.HashUserID(s.userID)).
			Int("violations", len(violations)).
			Msg("Transaction blocked by strict rule")
		return nil, &RuleViolationError{Violations: violations}
	}
	if len(violations) > 0 && !confirmWarnings {
		return nil, &ConfirmationRequiredError{Violations: violations}
	}

	date := in.Date
	if date.IsZero() {
		date = now
	}
	tx := &models.Transaction{
		UserID:      s.userID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		Notes:       in.Notes,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		logger.Log.Error().Err(err).
			Str("user_hash", logger.HashUserID(s.userID)).
			Msg("Failed to persist transaction")
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}
	s.state.Transactions = append(s.state.Transactions, *tx)

	logger.Log.Info().
		Str("user_hash", logger.HashUserID(s.userID)).
		Str("type", tx.Type).
		Str("category", tx.Category).
		Str("description", logger.SanitizeDescription(tx.Description)).
		Msg("Transaction recorded")
	return tx, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Service) DeleteTransaction(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Transactions, func(tx models.Transaction) bool { return tx.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("transaction_id", id).Msg("Failed to delete transaction")
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.state.Transactions = slices.Delete(s.state.Transactions, idx, idx+1)
	return nil
}

// BudgetStatuses derives the current status of every budget.
func (s *Service) BudgetStatuses() []budget.Status {
	return budget.ComputeAll(s.state.Budgets, s.state.Transactions, s.now())
}

// EvaluateImpact projects a candidate expense onto its budget without
// committing anything. A nil result means the candidate touches no tracked
// budget.
func (s *Service) EvaluateImpact(in TransactionInput) *budget.Impact {
	candidate := budget.Candidate{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
	}
	return budget.EvaluateImpact(candidate, s.state.Budgets, s.state.Rules, s.state.Transactions, s.now())
}

// FinancialSummary computes the all-time financial snapshot.
func (s *Service) FinancialSummary() summary.FinancialSummary {
	return summary.Financial(s.state.Transactions, s.state.Goals, s.now())
}

func validateTransactionInput(in TransactionInput) error {
	if in.Type != models.TransactionTypeIncome && in.Type != models.TransactionTypeExpense {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if in.Amount.Sign() <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if len(in.Description) > models.MaxDescriptionLength {
		return &ValidationError{Field: "description", Reason: "too long"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}
