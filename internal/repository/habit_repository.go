package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// HabitRepository handles habit database operations.
type HabitRepository struct {
	db database.PGXDB
}

// NewHabitRepository creates a new HabitRepository.
func NewHabitRepository(db database.PGXDB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Create adds a new habit.
func (r *HabitRepository) Create(ctx context.Context, h *models.Habit) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO habits (user_id, title, category, type, frequency, target_count, color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, h.UserID, h.Title, h.Category, h.Type, h.Frequency, h.TargetCount, h.Color, h.IsActive,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

// ListByUserID retrieves all habits for a user.
func (r *HabitRepository) ListByUserID(ctx context.Context, userID string) ([]models.Habit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, category, type, frequency, target_count,
		       current_streak, longest_streak, completed_dates, success_dates,
		       last_relapsed_date, total_relapses, color, is_active, created_at
		FROM habits
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Title, &h.Category, &h.Type, &h.Frequency, &h.TargetCount,
			&h.CurrentStreak, &h.LongestStreak, &h.CompletedDates, &h.SuccessDates,
			&h.LastRelapsedDate, &h.TotalRelapses, &h.Color, &h.IsActive, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}
	return habits, nil
}

// Update modifies an existing habit, including its streak bookkeeping.
func (r *HabitRepository) Update(ctx context.Context, h *models.Habit) error {
	_, err := r.db.Exec(ctx, `
		UPDATE habits SET
			title = $2,
			category = $3,
			frequency = $4,
			target_count = $5,
			current_streak = $6,
			longest_streak = $7,
			completed_dates = $8,
			success_dates = $9,
			last_relapsed_date = $10,
			total_relapses = $11,
			color = $12,
			is_active = $13
		WHERE id = $1
	`, h.ID, h.Title, h.Category, h.Frequency, h.TargetCount,
		h.CurrentStreak, h.LongestStreak, h.CompletedDates, h.SuccessDates,
		h.LastRelapsedDate, h.TotalRelapses, h.Color, h.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

// Delete removes a habit by ID.
func (r *HabitRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}
