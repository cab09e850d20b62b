package transactions

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loanhub/services/transactions TransactionUC

// TransactionUC represents the transaction listing usecase
type TransactionUC interface {
	ListAll(ctx context.Context) ([]*models.Transaction, error)
	ListByUser(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]*models.Transaction, error)
}
