package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// BudgetRuleRepository handles budget rule database operations.
type BudgetRuleRepository struct {
	db database.PGXDB
}

// NewBudgetRuleRepository creates a new BudgetRuleRepository.
func NewBudgetRuleRepository(db database.PGXDB) *BudgetRuleRepository {
	return &BudgetRuleRepository{db: db}
}

// Create adds a new budget rule.
func (r *BudgetRuleRepository) Create(ctx context.Context, rule *models.BudgetRule) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO budget_rules (user_id, name, description, category, max_amount, max_percentage, strictness, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, rule.UserID, rule.Name, rule.Description, rule.Category,
		rule.MaxAmount, rule.MaxPercentage, rule.Strictness, rule.IsActive,
	).Scan(&rule.ID, &rule.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget rule: %w", err)
	}
	return nil
}

// ListByUserID retrieves all budget rules for a user.
func (r *BudgetRuleRepository) ListByUserID(ctx context.Context, userID string) ([]models.BudgetRule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, category, max_amount, max_percentage, strictness, is_active, created_at
		FROM budget_rules
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget rules: %w", err)
	}
	defer rows.Close()

	var rules []models.BudgetRule
	for rows.Next() {
		var rule models.BudgetRule
		if err := rows.Scan(
			&rule.ID, &rule.UserID, &rule.Name, &rule.Description, &rule.Category,
			&rule.MaxAmount, &rule.MaxPercentage, &rule.Strictness, &rule.IsActive, &rule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rules: %w", err)
	}
	return rules, nil
}

// SetActive toggles a rule on or off.
func (r *BudgetRuleRepository) SetActive(ctx context.Context, id int, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE budget_rules SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set budget rule active: %w", err)
	}
	return nil
}

// Delete removes a budget rule by ID.
func (r *BudgetRuleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM budget_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget rule: %w", err)
	}
	return nil
}
