package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/aungkh/finhabit/internal/models"
)

var today = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format(models.DateLayout)
}

func TestStreak(t *testing.T) {
	t.Parallel()

	t.Run("three consecutive days ending today", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 3, Streak([]string{day(-2), day(-1), day(0)}, today))
	})

	t.Run("run ending yesterday still counts", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 2, Streak([]string{day(-2), day(-1)}, today))
	})

	t.Run("gap breaks the run", func(t *testing.T) {
		t.Parallel()
		// Completed on D and D+2: measured from D+2 the run is just 1.
		require.Equal(t, 1, Streak([]string{day(-2), day(0)}, today))
	})

	t.Run("run ending before yesterday is stale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, Streak([]string{day(-4), day(-3), day(-2)}, today))
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, Streak(nil, today))
	})

	t.Run("unsorted input", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 3, Streak([]string{day(0), day(-2), day(-1)}, today))
	})
}

func TestMarkCompleted(t *testing.T) {
	t.Parallel()

	t.Run("first completion starts a streak of one", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{Type: models.HabitTypeGood}
		require.True(t, MarkCompleted(h, today))
		require.Equal(t, 1, h.CurrentStreak)
		require.Equal(t, 1, h.LongestStreak)
		require.Equal(t, []string{day(0)}, h.CompletedDates)
	})

	t.Run("completing twice the same day is a no-op", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{Type: models.HabitTypeGood}
		require.True(t, MarkCompleted(h, today))
		require.False(t, MarkCompleted(h, today))
		require.Len(t, h.CompletedDates, 1)
		require.Equal(t, 1, h.CurrentStreak)
	})

	t.Run("extends an existing run", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{
			Type:           models.HabitTypeGood,
			CompletedDates: []string{day(-2), day(-1)},
			CurrentStreak:  2,
			LongestStreak:  2,
		}
		require.True(t, MarkCompleted(h, today))
		require.Equal(t, 3, h.CurrentStreak)
		require.Equal(t, 3, h.LongestStreak)
	})

	t.Run("longest streak survives a broken run", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{
			Type:           models.HabitTypeGood,
			CompletedDates: []string{day(-10), day(-9), day(-8), day(-7)},
			LongestStreak:  4,
		}
		require.True(t, MarkCompleted(h, today))
		require.Equal(t, 1, h.CurrentStreak)
		require.Equal(t, 4, h.LongestStreak)
	})
}

func TestLogSuccess(t *testing.T) {
	t.Parallel()

	t.Run("builds a streak over success dates", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{
			Type:         models.HabitTypeBad,
			SuccessDates: []string{day(-1)},
		}
		require.True(t, LogSuccess(h, today))
		require.Equal(t, 2, h.CurrentStreak)
		require.Equal(t, 2, h.LongestStreak)
	})

	t.Run("idempotent per day", func(t *testing.T) {
		t.Parallel()
		h := &models.Habit{Type: models.HabitTypeBad}
		require.True(t, LogSuccess(h, today))
		require.False(t, LogSuccess(h, today))
		require.Len(t, h.SuccessDates, 1)
	})
}

func TestRecordRelapse(t *testing.T) {
	t.Parallel()

	h := &models.Habit{
		Type:          models.HabitTypeBad,
		CurrentStreak: 6,
		LongestStreak: 6,
		CreatedAt:     today.AddDate(0, 0, -30),
	}
	RecordRelapse(h, today)

	require.NotNil(t, h.LastRelapsedDate)
	require.Equal(t, day(0), *h.LastRelapsedDate)
	require.Equal(t, 1, h.TotalRelapses)
	require.Equal(t, 0, h.CurrentStreak)
	require.Equal(t, 6, h.LongestStreak)
	require.Equal(t, 0, DaysClean(*h, today))
}

func TestDaysClean(t *testing.T) {
	t.Parallel()

	t.Run("counts from the last relapse", func(t *testing.T) {
		t.Parallel()
		relapsed := day(-5)
		h := models.Habit{
			Type:             models.HabitTypeBad,
			CreatedAt:        today.AddDate(0, 0, -30),
			LastRelapsedDate: &relapsed,
		}
		require.Equal(t, 5, DaysClean(h, today))
	})

	t.Run("counts from creation when never relapsed", func(t *testing.T) {
		t.Parallel()
		h := models.Habit{
			Type:      models.HabitTypeBad,
			CreatedAt: today.AddDate(0, 0, -10),
		}
		require.Equal(t, 10, DaysClean(h, today))
	})

	t.Run("creation later than relapse wins", func(t *testing.T) {
		t.Parallel()
		relapsed := day(-20)
		h := models.Habit{
			Type:             models.HabitTypeBad,
			CreatedAt:        today.AddDate(0, 0, -3),
			LastRelapsedDate: &relapsed,
		}
		require.Equal(t, 3, DaysClean(h, today))
	})

	t.Run("never negative", func(t *testing.T) {
		t.Parallel()
		h := models.Habit{
			Type:      models.HabitTypeBad,
			CreatedAt: today.AddDate(0, 0, 2),
		}
		require.Equal(t, 0, DaysClean(h, today))
	})
}

func TestLongestStreakAcross(t *testing.T) {
	t.Parallel()

	t.Run("empty habit list reports zero", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, LongestStreakAcross(nil))
	})

	t.Run("picks the maximum", func(t *testing.T) {
		t.Parallel()
		habits := []models.Habit{
			{LongestStreak: 3},
			{LongestStreak: 12},
			{LongestStreak: 7},
		}
		require.Equal(t, 12, LongestStreakAcross(habits))
	})
}
