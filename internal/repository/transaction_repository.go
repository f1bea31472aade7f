// Package repository implements the persistence contract for every domain
// entity: list per user, create, update, delete. Columns are snake_case;
// the structs in models are the in-memory camelCase side of that mapping.
package repository

import (
	"context"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/models"
)

// TransactionRepository handles transaction database operations.
type TransactionRepository struct {
	db database.PGXDB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db database.PGXDB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create adds a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, category, amount, description, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, tx.UserID, tx.Type, tx.Category, tx.Amount, tx.Description, tx.Date, tx.Notes,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListByUserID retrieves all transactions for a user, newest first.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, category, amount, description, date, notes, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Category, &tx.Amount,
			&tx.Description, &tx.Date, &tx.Notes, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

// Delete removes a transaction by ID.
func (r *TransactionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
