package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the database schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			description TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,

		`CREATE TABLE IF NOT EXISTS budgets (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			spend_limit DECIMAL(12, 2) NOT NULL,
			period TEXT NOT NULL,
			start_date TIMESTAMPTZ NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)`,

		`CREATE TABLE IF NOT EXISTS budget_rules (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT,
			max_amount DECIMAL(12, 2),
			max_percentage DOUBLE PRECISION,
			strictness TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_budget_rules_user_id ON budget_rules(user_id)`,

		`CREATE TABLE IF NOT EXISTS planned_transactions (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			description TEXT NOT NULL,
			scheduled_date TIMESTAMPTZ NOT NULL,
			recurrence TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_processed_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_planned_transactions_user_id ON planned_transactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_planned_transactions_scheduled_date ON planned_transactions(scheduled_date)`,

		`CREATE TABLE IF NOT EXISTS habits (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			frequency TEXT NOT NULL DEFAULT 'daily',
			target_count INTEGER NOT NULL DEFAULT 1,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			completed_dates TEXT[] NOT NULL DEFAULT '{}',
			success_dates TEXT[] NOT NULL DEFAULT '{}',
			last_relapsed_date TEXT,
			total_relapses INTEGER NOT NULL DEFAULT 0,
			color TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_habits_user_id ON habits(user_id)`,

		`CREATE TABLE IF NOT EXISTS activities (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'pending',
			date TIMESTAMPTZ NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			start_time TEXT NOT NULL DEFAULT '',
			end_time TEXT NOT NULL DEFAULT '',
			is_all_day BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date)`,

		`CREATE TABLE IF NOT EXISTS savings_goals (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			target_amount DECIMAL(12, 2) NOT NULL,
			current_amount DECIMAL(12, 2) NOT NULL DEFAULT 0,
			deadline TIMESTAMPTZ NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_savings_goals_user_id ON savings_goals(user_id)`,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
