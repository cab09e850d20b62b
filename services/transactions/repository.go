package transactions

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loanhub/services/transactions TransactionRepo

// TransactionRepo defines the transaction store
type TransactionRepo interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}
