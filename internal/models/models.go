// Package models defines the domain entities for the finance and habit tracker.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-granularity date format used for habit date sets.
const DateLayout = "2006-01-02"

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 200

// Transaction types.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Budget periods.
const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
)

// Budget rule strictness levels. Only strict rules block transactions;
// flexible and moderate rules produce advisory warnings.
const (
	StrictnessFlexible = "flexible"
	StrictnessModerate = "moderate"
	StrictnessStrict   = "strict"
)

// Recurrence kinds for planned transactions.
const (
	RecurrenceOnce     = "once"
	RecurrenceDaily    = "daily"
	RecurrenceWeekly   = "weekly"
	RecurrenceBiweekly = "biweekly"
	RecurrenceMonthly  = "monthly"
	RecurrenceYearly   = "yearly"
)

// Habit types.
const (
	HabitTypeGood = "good"
	HabitTypeBad  = "bad"
)

// Activity statuses. Completed and cancelled are terminal.
const (
	ActivityStatusPending    = "pending"
	ActivityStatusInProgress = "in_progress"
	ActivityStatusCompleted  = "completed"
	ActivityStatusCancelled  = "cancelled"
)

// Transaction represents a single income or expense entry.
// Amount is always positive; direction is carried by Type.
type Transaction struct {
	ID          int
	UserID      string
	Type        string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
}

// Budget represents a spending limit over a recurring period.
// Spent is never stored; it is always derived from transactions.
type Budget struct {
	ID        int
	UserID    string
	Category  string
	Name      string
	Limit     decimal.Decimal
	Period    string
	StartDate time.Time
	Color     string
	CreatedAt time.Time
}

// BudgetRule constrains candidate expenses. A nil Category applies the rule
// to every budget category. At least one of MaxAmount/MaxPercentage is
// expected to be set; both are checked independently when present.
type BudgetRule struct {
	ID            int
	UserID        string
	Name          string
	Description   string
	Category      *string
	MaxAmount     *decimal.Decimal
	MaxPercentage *float64
	Strictness    string
	IsActive      bool
	CreatedAt     time.Time
}

// PlannedTransaction is a future or recurring transaction template.
type PlannedTransaction struct {
	ID                int
	UserID            string
	Type              string
	Category          string
	Amount            decimal.Decimal
	Description       string
	ScheduledDate     time.Time
	Recurrence        string
	Notes             string
	IsActive          bool
	LastProcessedDate *time.Time
	CreatedAt         time.Time
}

// Habit tracks either a good habit to build or a bad habit to break.
// CompletedDates (good) and SuccessDates (bad) are append-only sets of
// DateLayout strings, at most one entry per calendar day.
type Habit struct {
	ID               int
	UserID           string
	Title            string
	Category         string
	Type             string
	Frequency        string
	TargetCount      int
	CurrentStreak    int
	LongestStreak    int
	CompletedDates   []string
	SuccessDates     []string
	LastRelapsedDate *string
	TotalRelapses    int
	Color            string
	IsActive         bool
	CreatedAt        time.Time
}

// Activity is a daily planner entry. It is not part of the financial core
// and is consumed only for daily summary aggregation.
type Activity struct {
	ID              int
	UserID          string
	Title           string
	Category        string
	Priority        string
	Status          string
	Date            time.Time
	DurationMinutes int
	StartTime       string
	EndTime         string
	IsAllDay        bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// SavingsGoal is a target amount the user is saving toward. Goal completion
// feeds the health score.
type SavingsGoal struct {
	ID            int
	UserID        string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Color         string
	CreatedAt     time.Time
}

// Suggestion is an AI-generated optimization suggestion. The ID and
// Implemented flag are attached locally on receipt.
type Suggestion struct {
	ID                       string
	Type                     string
	Priority                 string
	Title                    string
	Description              string
	PotentialSavings         *decimal.Decimal
	PotentialIncome          *decimal.Decimal
	Category                 string
	ImplementationDifficulty string
	Timeframe                string
	ActionItems              []string
	Implemented              bool
	CreatedAt                time.Time
}
