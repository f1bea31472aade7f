// Package summary rolls transactions, goals, and activities up into
// snapshot metrics: all-time totals, savings rate, health score, and the
// daily activity rollup.
package summary

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// FinancialSummary is the all-time financial snapshot.
type FinancialSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Balance          decimal.Decimal
	SavingsRate      float64
	HealthScore      int
	TransactionCount int
}

// Financial aggregates every transaction (no date filtering) into a
// snapshot. The savings rate is clamped into [0,100] and is 0 when there is
// no income at all.
func Financial(transactions []models.Transaction, goals []models.SavingsGoal, now time.Time) FinancialSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	var earliest time.Time
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount)
		}
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}

	balance := income.Sub(expenses)
	rate := savingsRate(balance, income)

	return FinancialSummary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		Balance:          balance,
		SavingsRate:      rate,
		HealthScore:      healthScore(rate, balance, transactionsPerDay(len(transactions), earliest, now), goals),
		TransactionCount: len(transactions),
	}
}

// savingsRate returns balance/income*100 clamped into [0,100], 0 when
// income is zero.
func savingsRate(balance, income decimal.Decimal) float64 {
	if income.Sign() <= 0 {
		return 0
	}
	rate := balance.Div(income).Mul(decimal.NewFromInt(100)).InexactFloat64()
	return math.Min(100, math.Max(0, rate))
}

// transactionsPerDay averages the transaction count over the days since the
// earliest transaction, at least one day.
func transactionsPerDay(count int, earliest, now time.Time) float64 {
	if count == 0 {
		return 0
	}
	days := now.Sub(earliest).Hours() / 24
	if days < 1 {
		days = 1
	}
	return float64(count) / days
}

// healthScore is a 0-100 weighted heuristic: up to 40 points from savings
// rate, 30 from absolute balance, 20 from transaction frequency, and 10
// proportional to average goal completion.
func healthScore(rate float64, balance decimal.Decimal, txPerDay float64, goals []models.SavingsGoal) int {
	score := 0.0

	switch {
	case rate > 20:
		score += 40
	case rate > 10:
		score += 25
	case rate > 0:
		score += 15
	}

	switch {
	case balance.GreaterThan(decimal.NewFromInt(1000)):
		score += 30
	case balance.GreaterThan(decimal.NewFromInt(500)):
		score += 20
	case balance.Sign() > 0:
		score += 10
	}

	switch {
	case txPerDay < 5:
		score += 20
	case txPerDay < 10:
		score += 15
	default:
		score += 10
	}

	score += 10 * averageGoalCompletion(goals)

	return int(math.Round(math.Min(100, math.Max(0, score))))
}

// averageGoalCompletion returns the mean completion fraction across goals,
// each capped at 1. An empty goal list contributes 0.
func averageGoalCompletion(goals []models.SavingsGoal) float64 {
	if len(goals) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range goals {
		if g.TargetAmount.Sign() <= 0 {
			continue
		}
		fraction := g.CurrentAmount.Div(g.TargetAmount).InexactFloat64()
		total += math.Min(1, math.Max(0, fraction))
	}
	return total / float64(len(goals))
}

// ActivityDaySummary is the per-day rollup of planner activities.
type ActivityDaySummary struct {
	Date             string
	Total            int
	Pending          int
	InProgress       int
	Completed        int
	Cancelled        int
	CompletedMinutes int
}

// DailyActivities rolls up the activities falling on the given calendar day.
func DailyActivities(activities []models.Activity, day time.Time) ActivityDaySummary {
	s := ActivityDaySummary{Date: day.Format(models.DateLayout)}
	for _, a := range activities {
		if a.Date.Format(models.DateLayout) != s.Date {
			continue
		}
		s.Total++
		switch a.Status {
		case models.ActivityStatusPending:
			s.Pending++
		case models.ActivityStatusInProgress:
			s.InProgress++
		case models.ActivityStatusCompleted:
			s.Completed++
			s.CompletedMinutes += a.DurationMinutes
		case models.ActivityStatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
