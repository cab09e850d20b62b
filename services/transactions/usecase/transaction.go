package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// ListAll returns every transaction
func (u *TransactionUC) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	return u.list(ctx, models.TransactionFilter{})
}

// ListByUser returns the transactions of userID. Customers and businesses may only list their own.
func (u *TransactionUC) ListByUser(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]*models.Transaction, error) {
	if !caller.CanRead(userID) {
		return nil, models.ErrAccessDenied
	}
	return u.list(ctx, models.TransactionFilter{UserID: userID})
}

func (u *TransactionUC) list(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	list, err := u.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return list, nil
}
