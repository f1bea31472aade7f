// Package schedule computes occurrence dates for planned transactions and
// the forward-looking balance projection built from them.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// UpcomingWindowDays is the horizon for the upcoming view and the balance
// projection.
const UpcomingWindowDays = 30

// NextOccurrence advances a date by one recurrence interval. Monthly and
// yearly steps clamp the day of month to the length of the target month,
// so Jan 31 + 1 month lands on the last day of February. The second return
// value is false for "once", which never advances.
func NextOccurrence(t time.Time, recurrence string) (time.Time, bool) {
	switch recurrence {
	case models.RecurrenceDaily:
		return t.AddDate(0, 0, 1), true
	case models.RecurrenceWeekly:
		return t.AddDate(0, 0, 7), true
	case models.RecurrenceBiweekly:
		return t.AddDate(0, 0, 14), true
	case models.RecurrenceMonthly:
		return addMonthsClamped(t, 1), true
	case models.RecurrenceYearly:
		return addMonthsClamped(t, 12), true
	default:
		return t, false
	}
}

// Due returns the active planned transactions whose scheduled date has
// arrived.
func Due(planned []models.PlannedTransaction, now time.Time) []models.PlannedTransaction {
	var due []models.PlannedTransaction
	for _, p := range planned {
		if p.IsActive && !p.ScheduledDate.After(now) {
			due = append(due, p)
		}
	}
	return due
}

// Upcoming returns active planned transactions scheduled within
// [now, now+UpcomingWindowDays], ascending by scheduled date.
func Upcoming(planned []models.PlannedTransaction, now time.Time) []models.PlannedTransaction {
	horizon := now.AddDate(0, 0, UpcomingWindowDays)
	var upcoming []models.PlannedTransaction
	for _, p := range planned {
		if !p.IsActive {
			continue
		}
		if p.ScheduledDate.Before(now) || p.ScheduledDate.After(horizon) {
			continue
		}
		upcoming = append(upcoming, p)
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(upcoming[j].ScheduledDate)
	})
	return upcoming
}

// Materialize builds the real transaction for a planned one. The
// transaction is dated now, not the originally scheduled date, and its
// notes carry a planned-origin marker.
func Materialize(p models.PlannedTransaction, now time.Time) models.Transaction {
	marker := fmt.Sprintf("[auto: planned #%d]", p.ID)
	notes := marker
	if strings.TrimSpace(p.Notes) != "" {
		notes = p.Notes + " " + marker
	}
	return models.Transaction{
		UserID:      p.UserID,
		Type:        p.Type,
		Category:    p.Category,
		Amount:      p.Amount,
		Description: p.Description,
		Date:        now,
		Notes:       notes,
	}
}

// Projection is a point-in-time balance forecast over the upcoming window.
// It is purely additive; budgets and rules do not feed into it.
type Projection struct {
	CurrentBalance    decimal.Decimal
	ProjectedIncome   decimal.Decimal
	ProjectedExpenses decimal.Decimal
	ProjectedBalance  decimal.Decimal
	WindowDays        int
}

// ProjectBalance sums projected income and expenses from the upcoming
// planned transactions onto the current balance.
func ProjectBalance(currentBalance decimal.Decimal, planned []models.PlannedTransaction, now time.Time) Projection {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, p := range Upcoming(planned, now) {
		if p.Type == models.TransactionTypeIncome {
			income = income.Add(p.Amount)
		} else {
			expenses = expenses.Add(p.Amount)
		}
	}
	return Projection{
		CurrentBalance:    currentBalance,
		ProjectedIncome:   income,
		ProjectedExpenses: expenses,
		ProjectedBalance:  currentBalance.Add(income).Sub(expenses),
		WindowDays:        UpcomingWindowDays,
	}
}

// addMonthsClamped adds whole months, clamping the day of month to the
// target month's length instead of letting the date normalize forward.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := firstOfMonth.AddDate(0, months, 0)
	day := t.Day()
	if last := lastDayOf(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOf returns the number of days in the month containing t.
func lastDayOf(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
