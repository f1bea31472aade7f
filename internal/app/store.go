// Package app owns the application state and the mutating operations over
// it. The core computations live in budget, schedule, habit, and summary;
// this package wires them to the persistence collaborator: every write
// validates first, persists, and only applies to the in-memory collections
// after the persistence call succeeds.
package app

import (
	"context"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
	"gitlab.com/aungkh/finhabit/internal/repository"
)

// Store is the persistence contract the service depends on. The Postgres
// repository layer implements it; tests substitute an in-memory fake.
type Store interface {
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int) error

	ListBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	CreateBudget(ctx context.Context, b *models.Budget) error
	UpdateBudget(ctx context.Context, b *models.Budget) error
	DeleteBudget(ctx context.Context, id int) error

	ListBudgetRules(ctx context.Context, userID string) ([]models.BudgetRule, error)
	CreateBudgetRule(ctx context.Context, rule *models.BudgetRule) error
	SetBudgetRuleActive(ctx context.Context, id int, active bool) error
	DeleteBudgetRule(ctx context.Context, id int) error

	ListPlannedTransactions(ctx context.Context, userID string) ([]models.PlannedTransaction, error)
	CreatePlannedTransaction(ctx context.Context, p *models.PlannedTransaction) error
	UpdatePlannedTransaction(ctx context.Context, p *models.PlannedTransaction) error
	DeletePlannedTransaction(ctx context.Context, id int) error

	ListHabits(ctx context.Context, userID string) ([]models.Habit, error)
	CreateHabit(ctx context.Context, h *models.Habit) error
	UpdateHabit(ctx context.Context, h *models.Habit) error
	DeleteHabit(ctx context.Context, id int) error

	ListActivities(ctx context.Context, userID string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, a *models.Activity) error
	UpdateActivity(ctx context.Context, a *models.Activity) error
	DeleteActivity(ctx context.Context, id int) error

	ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error)
	CreateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error
	UpdateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error
	DeleteSavingsGoal(ctx context.Context, id int) error
}

// PostgresStore implements Store on top of the repository layer.
type PostgresStore struct {
	transactions *repository.TransactionRepository
	budgets      *repository.BudgetRepository
	rules        *repository.BudgetRuleRepository
	planned      *repository.PlannedTransactionRepository
	habits       *repository.HabitRepository
	activities   *repository.ActivityRepository
	goals        *repository.SavingsGoalRepository
}

// NewPostgresStore creates a PostgresStore over a database handle.
func NewPostgresStore(db database.PGXDB) *PostgresStore {
	return &PostgresStore{
		transactions: repository.NewTransactionRepository(db),
		budgets:      repository.NewBudgetRepository(db),
		rules:        repository.NewBudgetRuleRepository(db),
		planned:      repository.NewPlannedTransactionRepository(db),
		habits:       repository.NewHabitRepository(db),
		activities:   repository.NewActivityRepository(db),
		goals:        repository.NewSavingsGoalRepository(db),
	}
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.transactions.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return s.transactions.Create(ctx, tx)
}

func (s *PostgresStore) DeleteTransaction(ctx context.Context, id int) error {
	return s.transactions.Delete(ctx, id)
}

func (s *PostgresStore) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.budgets.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateBudget(ctx context.Context, b *models.Budget) error {
	return s.budgets.Create(ctx, b)
}

func (s *PostgresStore) UpdateBudget(ctx context.Context, b *models.Budget) error {
	return s.budgets.Update(ctx, b)
}

func (s *PostgresStore) DeleteBudget(ctx context.Context, id int) error {
	return s.budgets.Delete(ctx, id)
}

func (s *PostgresStore) ListBudgetRules(ctx context.Context, userID string) ([]models.BudgetRule, error) {
	return s.rules.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateBudgetRule(ctx context.Context, rule *models.BudgetRule) error {
	return s.rules.Create(ctx, rule)
}

func (s *PostgresStore) SetBudgetRuleActive(ctx context.Context, id int, active bool) error {
	return s.rules.SetActive(ctx, id, active)
}

func (s *PostgresStore) DeleteBudgetRule(ctx context.Context, id int) error {
	return s.rules.Delete(ctx, id)
}

func (s *PostgresStore) ListPlannedTransactions(ctx context.Context, userID string) ([]models.PlannedTransaction, error) {
	return s.planned.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreatePlannedTransaction(ctx context.Context, p *models.PlannedTransaction) error {
	return s.planned.Create(ctx, p)
}

func (s *PostgresStore) UpdatePlannedTransaction(ctx context.Context, p *models.PlannedTransaction) error {
	return s.planned.Update(ctx, p)
}

func (s *PostgresStore) DeletePlannedTransaction(ctx context.Context, id int) error {
	return s.planned.Delete(ctx, id)
}

func (s *PostgresStore) ListHabits(ctx context.Context, userID string) ([]models.Habit, error) {
	return s.habits.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateHabit(ctx context.Context, h *models.Habit) error {
	return s.habits.Create(ctx, h)
}

func (s *PostgresStore) UpdateHabit(ctx context.Context, h *models.Habit) error {
	return s.habits.Update(ctx, h)
}

func (s *PostgresStore) DeleteHabit(ctx context.Context, id int) error {
	return s.habits.Delete(ctx, id)
}

func (s *PostgresStore) ListActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.activities.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateActivity(ctx context.Context, a *models.Activity) error {
	return s.activities.Create(ctx, a)
}

func (s *PostgresStore) UpdateActivity(ctx context.Context, a *models.Activity) error {
	return s.activities.Update(ctx, a)
}

func (s *PostgresStore) DeleteActivity(ctx context.Context, id int) error {
	return s.activities.Delete(ctx, id)
}

func (s *PostgresStore) ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	return s.goals.ListByUserID(ctx, userID)
}

func (s *PostgresStore) CreateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error {
	return s.goals.Create(ctx, g)
}

func (s *PostgresStore) UpdateSavingsGoal(ctx context.Context, g *models.SavingsGoal) error {
	return s.goals.Update(ctx, g)
}

func (s *PostgresStore) DeleteSavingsGoal(ctx context.Context, id int) error {
	return s.goals.Delete(ctx, id)
}

var _ Store = (*PostgresStore)(nil)
