package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

func TestHabitRepository_CreateAndList(t *testing.T) {
	tx := database.TestTx(t)
	ctx := context.Background()

	repo := NewHabitRepository(tx)

	habit := &models.Habit{
		UserID:      "user-1",
		Title:       "morning run",
		Type:        models.HabitTypeGood,
		Frequency:   "daily",
		TargetCount: 1,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, habit))
	require.NotZero(t, habit.ID)

	habits, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, habits, 1)
	require.Equal(t, "morning run", habits[0].Title)
	require.Empty(t, habits[0].CompletedDates)
	require.Nil(t, habits[0].LastRelapsedDate)
	require.Zero(t, habits[0].TotalRelapses)
}

func TestHabitRepository_Update(t *testing.T) {
	tx := database.TestTx(t)
	ctx := context.Background()

	repo := NewHabitRepository(tx)

	habit := &models.Habit{
		UserID:      "user-1",
		Title:       "smoking",
		Type:        models.HabitTypeBad,
		Frequency:   "daily",
		TargetCount: 1,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, habit))

	// Date arrays and relapse bookkeeping must survive a round trip.
	relapsed := "2025-06-10"
	habit.SuccessDates = []string{"2025-06-11", "2025-06-12"}
	habit.CurrentStreak = 2
	habit.LongestStreak = 4
	habit.LastRelapsedDate = &relapsed
	habit.TotalRelapses = 1
	require.NoError(t, repo.Update(ctx, habit))

	habits, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, habits, 1)

	got := habits[0]
	require.Equal(t, []string{"2025-06-11", "2025-06-12"}, got.SuccessDates)
	require.Equal(t, 2, got.CurrentStreak)
	require.Equal(t, 4, got.LongestStreak)
	require.NotNil(t, got.LastRelapsedDate)
	require.Equal(t, relapsed, *got.LastRelapsedDate)
	require.Equal(t, 1, got.TotalRelapses)
}

func TestHabitRepository_Delete(t *testing.T) {
	tx := database.TestTx(t)
	ctx := context.Background()

	repo := NewHabitRepository(tx)

	habit := &models.Habit{
		UserID:      "user-1",
		Title:       "stretching",
		Type:        models.HabitTypeGood,
		Frequency:   "daily",
		TargetCount: 1,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, habit))
	require.NoError(t, repo.Delete(ctx, habit.ID))

	habits, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, habits)
}
