package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
	"gitlab.com/aungkh/finhabit/internal/summary"
)

// ActivityInput is the caller-supplied part of a new activity.
type ActivityInput struct {
	Title           string
	Category        string
	Priority        string
	Date            time.Time
	DurationMinutes int
	StartTime       string
	EndTime         string
	IsAllDay        bool
}

// AddActivity validates and records an activity. New activities start
// pending.
func (s *Service) AddActivity(ctx context.Context, in ActivityInput) (*models.Activity, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}

	a := &models.Activity{
		UserID:          s.userID,
		Title:           in.Title,
		Category:        in.Category,
		Priority:        priority,
		Status:          models.ActivityStatusPending,
		Date:            date,
		DurationMinutes: in.DurationMinutes,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		IsAllDay:        in.IsAllDay,
	}
	if err := s.store.CreateActivity(ctx, a); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist activity")
		return nil, fmt.Errorf("failed to persist activity: %w", err)
	}
	s.state.Activities = append(s.state.Activities, *a)
	return a, nil
}

// StartActivity moves a pending activity to in_progress.
func (s *Service) StartActivity(ctx context.Context, id int) (*models.Activity, error) {
	return s.transitionActivity(ctx, id, models.ActivityStatusInProgress, nil)
}

// CompleteActivity moves an activity to the terminal completed status and
// stamps CompletedAt.
func (s *Service) CompleteActivity(ctx context.Context, id int) (*models.Activity, error) {
	completedAt := s.now()
	return s.transitionActivity(ctx, id, models.ActivityStatusCompleted, &completedAt)
}

// CancelActivity moves an activity to the terminal cancelled status.
func (s *Service) CancelActivity(ctx context.Context, id int) (*models.Activity, error) {
	return s.transitionActivity(ctx, id, models.ActivityStatusCancelled, nil)
}

// transitionActivity enforces the activity state machine: only pending and
// in_progress activities may move, and completed/cancelled are terminal.
func (s *Service) transitionActivity(ctx context.Context, id int, target string, completedAt *time.Time) (*models.Activity, error) {
	idx := slices.IndexFunc(s.state.Activities, func(a models.Activity) bool { return a.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	current := s.state.Activities[idx].Status
	if current == models.ActivityStatusCompleted || current == models.ActivityStatusCancelled {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("activity is already %s", current)}
	}
	if target == models.ActivityStatusInProgress && current != models.ActivityStatusPending {
		return nil, &ValidationError{Field: "status", Reason: "only pending activities can be started"}
	}

	updated := s.state.Activities[idx]
	updated.Status = target
	updated.CompletedAt = completedAt
	if err := s.store.UpdateActivity(ctx, &updated); err != nil {
		logger.Log.Error().Err(err).Int("activity_id", id).Msg("Failed to persist activity transition")
		return nil, fmt.Errorf("failed to persist activity transition: %w", err)
	}
	s.state.Activities[idx] = updated
	return &updated, nil
}

// DeleteActivity removes an activity by ID.
func (s *Service) DeleteActivity(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Activities, func(a models.Activity) bool { return a.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeleteActivity(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("activity_id", id).Msg("Failed to delete activity")
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	s.state.Activities = slices.Delete(s.state.Activities, idx, idx+1)
	return nil
}

// DailyActivitySummary rolls up the activities on one calendar day.
func (s *Service) DailyActivitySummary(day time.Time) summary.ActivityDaySummary {
	return summary.DailyActivities(s.state.Activities, day)
}
