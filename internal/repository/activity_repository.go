package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// ActivityRepository handles activity database operations.
type ActivityRepository struct {
	db database.PGXDB
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db database.PGXDB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create adds a new activity.
func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO activities (user_id, title, category, priority, status, date, duration_minutes, start_time, end_time, is_all_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, a.UserID, a.Title, a.Category, a.Priority, a.Status, a.Date,
		a.DurationMinutes, a.StartTime, a.EndTime, a.IsAllDay,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListByUserID retrieves all activities for a user.
func (r *ActivityRepository) ListByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, category, priority, status, date,
		       duration_minutes, start_time, end_time, is_all_day, completed_at, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Category, &a.Priority, &a.Status, &a.Date,
			&a.DurationMinutes, &a.StartTime, &a.EndTime, &a.IsAllDay, &a.CompletedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

// Update modifies an existing activity.
func (r *ActivityRepository) Update(ctx context.Context, a *models.Activity) error {
	_, err := r.db.Exec(ctx, `
		UPDATE activities SET
			title = $2,
			category = $3,
			priority = $4,
			status = $5,
			date = $6,
			duration_minutes = $7,
			start_time = $8,
			end_time = $9,
			is_all_day = $10,
			completed_at = $11
		WHERE id = $1
	`, a.ID, a.Title, a.Category, a.Priority, a.Status, a.Date,
		a.DurationMinutes, a.StartTime, a.EndTime, a.IsAllDay, a.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// Delete removes an activity by ID.
func (r *ActivityRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
