// Package habit maintains consecutive-day streaks for good habits and
// success/relapse tracking for bad ones. Date sets are day-granularity
// strings in models.DateLayout, at most one entry per calendar day.
package habit

import (
	"slices"
	"time"

	"gitlab.com/aungkh/finhabit/internal/models"
)

// Streak returns the length of the trailing run of consecutive calendar
// days ending today or yesterday. A run that ended before yesterday counts
// as broken and yields 0.
func Streak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}

	day := today
	if _, ok := set[day.Format(models.DateLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := set[day.Format(models.DateLayout)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := set[day.Format(models.DateLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MarkCompleted records a good-habit completion for today. Completing twice
// on the same day is a no-op; the return value reports whether anything
// changed. Longest streak only ever grows.
func MarkCompleted(h *models.Habit, today time.Time) bool {
	day := today.Format(models.DateLayout)
	if slices.Contains(h.CompletedDates, day) {
		return false
	}
	h.CompletedDates = append(h.CompletedDates, day)
	h.CurrentStreak = Streak(h.CompletedDates, today)
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}
	return true
}

// LogSuccess records a bad-habit success for today, idempotent per day.
// The streak bookkeeping mirrors good-habit completions but runs over
// SuccessDates.
func LogSuccess(h *models.Habit, today time.Time) bool {
	day := today.Format(models.DateLayout)
	if slices.Contains(h.SuccessDates, day) {
		return false
	}
	h.SuccessDates = append(h.SuccessDates, day)
	h.CurrentStreak = Streak(h.SuccessDates, today)
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}
	return true
}

// RecordRelapse marks a bad-habit relapse today. Days clean and the current
// streak both reset; the longest streak is preserved.
func RecordRelapse(h *models.Habit, today time.Time) {
	day := today.Format(models.DateLayout)
	h.LastRelapsedDate = &day
	h.TotalRelapses++
	h.CurrentStreak = 0
}

// DaysClean derives the whole days elapsed since the later of the last
// relapse and the habit's creation. It is recomputed on every read and
// never negative.
func DaysClean(h models.Habit, today time.Time) int {
	anchor := h.CreatedAt
	if h.LastRelapsedDate != nil {
		if relapsed, err := time.ParseInLocation(models.DateLayout, *h.LastRelapsedDate, today.Location()); err == nil && relapsed.After(anchor) {
			anchor = relapsed
		}
	}
	days := daysBetween(anchor, today)
	if days < 0 {
		return 0
	}
	return days
}

// LongestStreakAcross returns the maximum longest streak over all habits,
// or 0 for an empty list.
func LongestStreakAcross(habits []models.Habit) int {
	longest := 0
	for _, h := range habits {
		if h.LongestStreak > longest {
			longest = h.LongestStreak
		}
	}
	return longest
}

// daysBetween counts whole calendar days from one date to another,
// ignoring the time of day on both ends.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
