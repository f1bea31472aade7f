package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// SavingsGoalRepository handles savings goal database operations.
type SavingsGoalRepository struct {
	db database.PGXDB
}

// NewSavingsGoalRepository creates a new SavingsGoalRepository.
func NewSavingsGoalRepository(db database.PGXDB) *SavingsGoalRepository {
	return &SavingsGoalRepository{db: db}
}

// Create adds a new savings goal.
func (r *SavingsGoalRepository) Create(ctx context.Context, g *models.SavingsGoal) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, deadline, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Color,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}
	return nil
}

// ListByUserID retrieves all savings goals for a user.
func (r *SavingsGoalRepository) ListByUserID(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, target_amount, current_amount, deadline, color, created_at
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
			&g.Deadline, &g.Color, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan savings goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings goals: %w", err)
	}
	return goals, nil
}

// Update modifies an existing savings goal.
func (r *SavingsGoalRepository) Update(ctx context.Context, g *models.SavingsGoal) error {
	_, err := r.db.Exec(ctx, `
		UPDATE savings_goals SET
			name = $2,
			target_amount = $3,
			current_amount = $4,
			deadline = $5,
			color = $6
		WHERE id = $1
	`, g.ID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Color)
	if err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}
	return nil
}

// Delete removes a savings goal by ID.
func (r *SavingsGoalRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM savings_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}
	return nil
}
