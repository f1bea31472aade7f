package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gitlab.com/aungkh/finhabit/internal/habit"
	"gitlab.com/aungkh/finhabit/internal/logger"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// HabitInput is the caller-supplied part of a new habit.
type HabitInput struct {
	Title       string
	Category    string
	Type        string
	Frequency   string
	TargetCount int
	Color       string
}

// AddHabit validates and records a habit.
func (s *Service) AddHabit(ctx context.Context, in HabitInput) (*models.Habit, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Type != models.HabitTypeGood && in.Type != models.HabitTypeBad {
		return nil, &ValidationError{Field: "type", Reason: "must be good or bad"}
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	targetCount := in.TargetCount
	if targetCount <= 0 {
		targetCount = 1
	}

	h := &models.Habit{
		UserID:      s.userID,
		Title:       in.Title,
		Category:    in.Category,
		Type:        in.Type,
		Frequency:   frequency,
		TargetCount: targetCount,
		Color:       in.Color,
		IsActive:    true,
	}
	if err := s.store.CreateHabit(ctx, h); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist habit")
		return nil, fmt.Errorf("failed to persist habit: %w", err)
	}
	s.state.Habits = append(s.state.Habits, *h)
	return h, nil
}

// CompleteHabitToday records a good-habit completion for the current day.
// Completing twice on the same day is a no-op and touches neither the
// store nor the streak.
func (s *Service) CompleteHabitToday(ctx context.Context, id int) (*models.Habit, error) {
	return s.updateHabit(ctx, id, models.HabitTypeGood, "complete", func(h *models.Habit) bool {
		return habit.MarkCompleted(h, s.now())
	})
}

// LogHabitSuccessToday records a bad-habit success for the current day,
// idempotent per day.
func (s *Service) LogHabitSuccessToday(ctx context.Context, id int) (*models.Habit, error) {
	return s.updateHabit(ctx, id, models.HabitTypeBad, "log success", func(h *models.Habit) bool {
		return habit.LogSuccess(h, s.now())
	})
}

// RecordHabitRelapse marks a bad-habit relapse today: days clean and the
// current streak reset, total relapses grows.
func (s *Service) RecordHabitRelapse(ctx context.Context, id int) (*models.Habit, error) {
	return s.updateHabit(ctx, id, models.HabitTypeBad, "record relapse", func(h *models.Habit) bool {
		habit.RecordRelapse(h, s.now())
		return true
	})
}

// updateHabit applies a habit mutation with the persist-then-apply
// ordering shared by every habit operation. A mutation returning false is
// an idempotent no-op.
func (s *Service) updateHabit(ctx context.Context, id int, wantType, op string, mutate func(*models.Habit) bool) (*models.Habit, error) {
	idx := slices.IndexFunc(s.state.Habits, func(h models.Habit) bool { return h.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	if s.state.Habits[idx].Type != wantType {
		return nil, &ValidationError{Field: "type", Reason: fmt.Sprintf("cannot %s a %s habit", op, s.state.Habits[idx].Type)}
	}

	updated := s.state.Habits[idx]
	updated.CompletedDates = slices.Clone(updated.CompletedDates)
	updated.SuccessDates = slices.Clone(updated.SuccessDates)
	if !mutate(&updated) {
		h := s.state.Habits[idx]
		return &h, nil
	}

	if err := s.store.UpdateHabit(ctx, &updated); err != nil {
		logger.Log.Error().Err(err).Int("habit_id", id).Str("op", op).Msg("Failed to persist habit update")
		return nil, fmt.Errorf("failed to persist habit update: %w", err)
	}
	s.state.Habits[idx] = updated

	logger.Log.Debug().
		Int("habit_id", id).
		Str("op", op).
		Int("current_streak", updated.CurrentStreak).
		Int("longest_streak", updated.LongestStreak).
		Msg("Habit updated")
	return &updated, nil
}

// DeleteHabit removes a habit by ID.
func (s *Service) DeleteHabit(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.state.Habits, func(h models.Habit) bool { return h.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if err := s.store.DeleteHabit(ctx, id); err != nil {
		logger.Log.Error().Err(err).Int("habit_id", id).Msg("Failed to delete habit")
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	s.state.Habits = slices.Delete(s.state.Habits, idx, idx+1)
	return nil
}

// HabitView is a habit with its derived fields attached.
type HabitView struct {
	models.Habit
	// DaysClean is derived on read; meaningful for bad habits only.
	DaysClean int
}

// HabitOverview aggregates all habits with derived values.
type HabitOverview struct {
	Habits        []HabitView
	LongestStreak int
}

// HabitOverview derives per-habit clean days and the longest streak across
// all habits. An empty habit list yields a zero longest streak.
func (s *Service) HabitOverview() HabitOverview {
	now := s.now()
	views := make([]HabitView, 0, len(s.state.Habits))
	for _, h := range s.state.Habits {
		view := HabitView{Habit: h}
		if h.Type == models.HabitTypeBad {
			view.DaysClean = habit.DaysClean(h, now)
		}
		views = append(views, view)
	}
	return HabitOverview{
		Habits:        views,
		LongestStreak: habit.LongestStreakAcross(s.state.Habits),
	}
}
