package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// PlannedTransactionRepository handles planned transaction database
// operations.
type PlannedTransactionRepository struct {
	db database.PGXDB
}

// NewPlannedTransactionRepository creates a new PlannedTransactionRepository.
func NewPlannedTransactionRepository(db database.PGXDB) *PlannedTransactionRepository {
	return &PlannedTransactionRepository{db: db}
}

// Create adds a new planned transaction.
func (r *PlannedTransactionRepository) Create(ctx context.Context, p *models.PlannedTransaction) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO planned_transactions (user_id, type, category, amount, description, scheduled_date, recurrence, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, p.UserID, p.Type, p.Category, p.Amount, p.Description,
		p.ScheduledDate, p.Recurrence, p.Notes, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create planned transaction: %w", err)
	}
	return nil
}

// ListByUserID retrieves all planned transactions for a user.
func (r *PlannedTransactionRepository) ListByUserID(ctx context.Context, userID string) ([]models.PlannedTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, category, amount, description, scheduled_date, recurrence, notes, is_active, last_processed_date, created_at
		FROM planned_transactions
		WHERE user_id = $1
		ORDER BY scheduled_date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned transactions: %w", err)
	}
	defer rows.Close()

	var planned []models.PlannedTransaction
	for rows.Next() {
		var p models.PlannedTransaction
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Type, &p.Category, &p.Amount, &p.Description,
			&p.ScheduledDate, &p.Recurrence, &p.Notes, &p.IsActive, &p.LastProcessedDate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan planned transaction: %w", err)
		}
		planned = append(planned, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planned transactions: %w", err)
	}
	return planned, nil
}

// Update modifies an existing planned transaction, including its schedule
// and processing state.
func (r *PlannedTransactionRepository) Update(ctx context.Context, p *models.PlannedTransaction) error {
	_, err := r.db.Exec(ctx, `
		UPDATE planned_transactions SET
			type = $2,
			category = $3,
			amount = $4,
			description = $5,
			scheduled_date = $6,
			recurrence = $7,
			notes = $8,
			is_active = $9,
			last_processed_date = $10
		WHERE id = $1
	`, p.ID, p.Type, p.Category, p.Amount, p.Description,
		p.ScheduledDate, p.Recurrence, p.Notes, p.IsActive, p.LastProcessedDate)
	if err != nil {
		return fmt.Errorf("failed to update planned transaction: %w", err)
	}
	return nil
}

// Delete removes a planned transaction by ID.
func (r *PlannedTransactionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM planned_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete planned transaction: %w", err)
	}
	return nil
}
