package app

import (
	"context"
	"errors"
	"slices"

	"gitlab.com/aungkh/finhabit/internal/models"
)

// errStoreDown simulates a persistence collaborator failure.
var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory Store for service tests. Setting fail makes
// every call error without touching the stored data.
type fakeStore struct {
	fail bool

	nextID       int
	transactions []models.Transaction
	budgets      []models.Budget
	rules        []models.BudgetRule
	planned      []models.PlannedTransaction
	habits       []models.Habit
	activities   []models.Activity
	goals        []models.SavingsGoal
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) err() error {
	if f.fail {
		return errStoreDown
	}
	return nil
}

func (f *fakeStore) ListTransactions(_ context.Context, _ string) ([]models.Transaction, error) {
	return slices.Clone(f.transactions), f.err()
}

func (f *fakeStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	if f.fail {
		return errStoreDown
	}
	tx.ID = f.id()
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeStore) DeleteTransaction(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.transactions = slices.DeleteFunc(f.transactions, func(tx models.Transaction) bool { return tx.ID == id })
	return nil
}

func (f *fakeStore) ListBudgets(_ context.Context, _ string) ([]models.Budget, error) {
	return slices.Clone(f.budgets), f.err()
}

func (f *fakeStore) CreateBudget(_ context.Context, b *models.Budget) error {
	if f.fail {
		return errStoreDown
	}
	b.ID = f.id()
	f.budgets = append(f.budgets, *b)
	return nil
}

func (f *fakeStore) UpdateBudget(_ context.Context, b *models.Budget) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.budgets {
		if f.budgets[i].ID == b.ID {
			f.budgets[i] = *b
		}
	}
	return nil
}

func (f *fakeStore) DeleteBudget(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.budgets = slices.DeleteFunc(f.budgets, func(b models.Budget) bool { return b.ID == id })
	return nil
}

func (f *fakeStore) ListBudgetRules(_ context.Context, _ string) ([]models.BudgetRule, error) {
	return slices.Clone(f.rules), f.err()
}

func (f *fakeStore) CreateBudgetRule(_ context.Context, rule *models.BudgetRule) error {
	if f.fail {
		return errStoreDown
	}
	rule.ID = f.id()
	f.rules = append(f.rules, *rule)
	return nil
}

func (f *fakeStore) SetBudgetRuleActive(_ context.Context, id int, active bool) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules[i].IsActive = active
		}
	}
	return nil
}

func (f *fakeStore) DeleteBudgetRule(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.rules = slices.DeleteFunc(f.rules, func(r models.BudgetRule) bool { return r.ID == id })
	return nil
}

func (f *fakeStore) ListPlannedTransactions(_ context.Context, _ string) ([]models.PlannedTransaction, error) {
	return slices.Clone(f.planned), f.err()
}

func (f *fakeStore) CreatePlannedTransaction(_ context.Context, p *models.PlannedTransaction) error {
	if f.fail {
		return errStoreDown
	}
	p.ID = f.id()
	f.planned = append(f.planned, *p)
	return nil
}

func (f *fakeStore) UpdatePlannedTransaction(_ context.Context, p *models.PlannedTransaction) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.planned {
		if f.planned[i].ID == p.ID {
			f.planned[i] = *p
		}
	}
	return nil
}

func (f *fakeStore) DeletePlannedTransaction(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.planned = slices.DeleteFunc(f.planned, func(p models.PlannedTransaction) bool { return p.ID == id })
	return nil
}

func (f *fakeStore) ListHabits(_ context.Context, _ string) ([]models.Habit, error) {
	return slices.Clone(f.habits), f.err()
}

func (f *fakeStore) CreateHabit(_ context.Context, h *models.Habit) error {
	if f.fail {
		return errStoreDown
	}
	h.ID = f.id()
	f.habits = append(f.habits, *h)
	return nil
}

func (f *fakeStore) UpdateHabit(_ context.Context, h *models.Habit) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.habits {
		if f.habits[i].ID == h.ID {
			f.habits[i] = *h
		}
	}
	return nil
}

func (f *fakeStore) DeleteHabit(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.habits = slices.DeleteFunc(f.habits, func(h models.Habit) bool { return h.ID == id })
	return nil
}

func (f *fakeStore) ListActivities(_ context.Context, _ string) ([]models.Activity, error) {
	return slices.Clone(f.activities), f.err()
}

func (f *fakeStore) CreateActivity(_ context.Context, a *models.Activity) error {
	if f.fail {
		return errStoreDown
	}
	a.ID = f.id()
	f.activities = append(f.activities, *a)
	return nil
}

func (f *fakeStore) UpdateActivity(_ context.Context, a *models.Activity) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.activities {
		if f.activities[i].ID == a.ID {
			f.activities[i] = *a
		}
	}
	return nil
}

func (f *fakeStore) DeleteActivity(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.activities = slices.DeleteFunc(f.activities, func(a models.Activity) bool { return a.ID == id })
	return nil
}

func (f *fakeStore) ListSavingsGoals(_ context.Context, _ string) ([]models.SavingsGoal, error) {
	return slices.Clone(f.goals), f.err()
}

func (f *fakeStore) CreateSavingsGoal(_ context.Context, g *models.SavingsGoal) error {
	if f.fail {
		return errStoreDown
	}
	g.ID = f.id()
	f.goals = append(f.goals, *g)
	return nil
}

func (f *fakeStore) UpdateSavingsGoal(_ context.Context, g *models.SavingsGoal) error {
	if f.fail {
		return errStoreDown
	}
	for i := range f.goals {
		if f.goals[i].ID == g.ID {
			f.goals[i] = *g
		}
	}
	return nil
}

func (f *fakeStore) DeleteSavingsGoal(_ context.Context, id int) error {
	if f.fail {
		return errStoreDown
	}
	f.goals = slices.DeleteFunc(f.goals, func(g models.SavingsGoal) bool { return g.ID == id })
	return nil
}

var _ Store = (*fakeStore)(nil)
