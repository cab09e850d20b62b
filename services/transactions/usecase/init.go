package usecase

import (
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/transactions"
)

type TransactionUC struct {
	transactionRepo transactions.TransactionRepo
	cfg             *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(transactionRepo transactions.TransactionRepo, cfg *models.Config) *TransactionUC {
	return &TransactionUC{
		transactionRepo: transactionRepo,
		cfg:             cfg,
	}
}
