package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

type transactionRow struct {
	ID        uuid.UUID              `db:"id"`
	UserID    uuid.UUID              `db:"user_id"`
	Amount    float64                `db:"amount"`
	Type      models.TransactionType `db:"type"`
	CreatedAt time.Time              `db:"created_at"`
	UserName  string                 `db:"user_name"`
	UserEmail string                 `db:"user_email"`
}

// ListTransactions returns transactions matching filter with their owner, newest first
func (r *TransactionRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.amount, t.type, t.created_at,
			u.name AS user_name, u.email AS user_email
		FROM transactions t
		JOIN users u ON u.id = t.user_id`

	var args []interface{}
	if filter.UserID != uuid.Nil {
		query += ` WHERE t.user_id = $1`
		args = append(args, filter.UserID)
	}
	query += ` ORDER BY t.created_at DESC`

	var rows []transactionRow
	err := nrpkg.WithDatastoreSegment(ctx, "transactions", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	list := make([]*models.Transaction, 0, len(rows))
	for _, row := range rows {
		list = append(list, &models.Transaction{
			ID:        row.ID,
			UserID:    row.UserID,
			Amount:    row.Amount,
			Type:      row.Type,
			CreatedAt: row.CreatedAt,
			User:      &models.UserSummary{ID: row.UserID, Name: row.UserName, Email: row.UserEmail},
		})
	}
	return list, nil
}
