package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// BudgetRepository handles budget database operations. No spent column
// exists; spend is always derived from transactions.
type BudgetRepository struct {
	db database.PGXDB
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db database.PGXDB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create adds a new budget.
func (r *BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category, name, spend_limit, period, start_date, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, b.UserID, b.Category, b.Name, b.Limit, b.Period, b.StartDate, b.Color,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// ListByUserID retrieves all budgets for a user.
func (r *BudgetRepository) ListByUserID(ctx context.Context, userID string) ([]models.Budget, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, category, name, spend_limit, period, start_date, color, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Category, &b.Name, &b.Limit,
			&b.Period, &b.StartDate, &b.Color, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}
	return budgets, nil
}

// Update modifies an existing budget.
func (r *BudgetRepository) Update(ctx context.Context, b *models.Budget) error {
	_, err := r.db.Exec(ctx, `
		UPDATE budgets SET
			category = $2,
			name = $3,
			spend_limit = $4,
			period = $5,
			start_date = $6,
			color = $7
		WHERE id = $1
	`, b.ID, b.Category, b.Name, b.Limit, b.Period, b.StartDate, b.Color)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

// Delete removes a budget by ID.
func (r *BudgetRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
