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
	"gitlab.com/aungkh/finhabit/internal/schedule"
	"gitlab.com/aungkh/finhabit/internal/summary"
)

// PlannedTransactionInput is the caller-supplied part of a new planned
// transaction.
type PlannedTransactionInput struct {
	Type          string
	Category      string
	Amount        decimal.Decimal
	Description   string
	ScheduledDate time.Time
	Recurrence    string
	Notes         string
}

var validRecurrences = []string{
	models.RecurrenceOnce,
	models.RecurrenceDaily,
	models.RecurrenceWeekly,
	models.RecurrenceBiweekly,
	models.RecurrenceMonthly,
	models.RecurrenceYearly,
}

// AddPlannedTransaction validates and records a planned transaction.
// New records are always active.
func (s *Service) AddPlannedTransaction(ctx context.Context, in PlannedTransactionInput) (*models.PlannedTransaction, error) {
	if in.Type != models.TransactionTypeIncome && in.Type != models.TransactionTypeExpense {
		return nil, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if in.Amount.Sign() <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if in.ScheduledDate.IsZero() {
		return nil, &ValidationError{Field: "scheduledDate", Reason: "is required"}
	}
	if !slices.Contains(validRecurrences, in.Recurrence) {
		return nil, &ValidationError{Field: "recurrence", Reason: "unknown recurrence kind"}
	}

	p := &models.PlannedTransaction{
		UserID:        s.userID,
		Type:          in.Type,
		Category:      in.Category,
		Amount:        in.Amount,
		Description:   in.Description,
		ScheduledDate: in.ScheduledDate,
		Recurrence:    in.Recurrence,
		Notes:         in.Notes,
		IsActive:      true,
	}
	if err := s.store.CreatePlannedTransaction(ctx, p); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist planned transaction")
		return nil, fmt.Errorf("failed to persist planned transaction: %w", err)
	}
	s.state.Planned = append(s.state.Planned, *p)
	return p, nil
}

// ProcessPlannedTransaction materializes one planned transaction into a
// real one dated now, stamps lastProcessedDate, and either deactivates it
// (once) or advances its schedule by one recurrence interval.
func (s *Service) ProcessPlannedTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	idx := slices.IndexFunc(s.state.Planned, func(p models.PlannedTransaction) bool { return p.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	p := s.state.Planned[idx]
	if !p.IsActive {
		return nil, &ValidationError{Field: "isActive", Reason: "planned transaction is no longer active"}
	}

	now := s.now()
	tx := schedule.Materialize(p, now)
	if err := s.store.CreateTransaction(ctx, &tx); err != nil {
		logger.Log.Error().Err(err).Int("planned_id", id).Msg("Failed to materialize planned transaction")
		return nil, fmt.Errorf("failed to materialize planned transaction: %w", err)
	}
	s.state.Transactions = append(s.state.Transactions, tx)

	p.LastProcessedDate = &now
	if next, ok := schedule.NextOccurrence(p.ScheduledDate, p.Recurrence); ok {
		p.ScheduledDate = next
	} else {
		p.IsActive = false
	}
	if err := s.store.UpdatePlannedTransaction(ctx, &p); err != nil {
		logger.Log.Error().Err(err).Int("planned_id", id).Msg("Failed to update planned transaction schedule")
		return nil, fmt.Errorf("failed to update planned transaction: %w", err)
	}
	s.state.Planned[idx] = p

	logger.Log.Info().
		Int("planned_id", id).
		Str("recurrence", p.Recurrence).
		Bool("still_active", p.IsActive).
		Msg("Planned transaction processed")
	return &tx, nil
}

// ProcessDue processes every active planned transaction whose scheduled
// date has arrived. Failures are logged per item and do not stop the rest.
// Returns the number processed successfully.
func (s *Service) ProcessDue(ctx context.Context) int {
	processed := 0
	for _, p := range schedule.Due(s.state.Planned, s.now()) {
		if _, err := s.ProcessPlannedTransaction(ctx, p.ID); err != nil {
			logger.Log.Warn().Err(err).Int("planned_id", p.ID).Msg("Skipping due planned transaction")
			continue
		}
		processed++
	}
	return processed
}

// DeletePlannedTransaction removes a planned transaction by ID.
func (s *Service) DeletePlannedTransaction(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Planned, func(p models.PlannedTransaction) bool { return p.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeletePlannedTransaction(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("planned_id", id).Msg("Failed to delete planned transaction")
		return fmt.Errorf("failed to delete planned transaction: %w", err)
	}
	s.state.Planned = slices.Delete(s.state.Planned, idx, idx+1)
	return nil
}

// Upcoming lists active planned transactions in the next 30 days,
// ascending by date.
func (s *Service) Upcoming() []models.PlannedTransaction {
	return schedule.Upcoming(s.state.Planned, s.now())
}

// ProjectedBalance forecasts the balance at the end of the upcoming window
// from the current all-time balance plus planned flows.
func (s *Service) ProjectedBalance() schedule.Projection {
	fin := summary.Financial(s.state.Transactions, s.state.Goals, s.now())
	return schedule.ProjectBalance(fin.Balance, s.state.Planned, s.now())
}
