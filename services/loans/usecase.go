package loans

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loanhub/services/loans LoanUC

// LoanUC represents the loan lifecycle usecase
type LoanUC interface {
	Apply(ctx context.Context, caller models.Identity, req *models.ApplyLoanRequest) (*models.Loan, error)
	Decide(ctx context.Context, caller models.Identity, loanID uuid.UUID, status models.LoanStatus) (*models.Loan, error)

	ListPending(ctx context.Context) ([]*models.Loan, error)
	ListAll(ctx context.Context) ([]*models.Loan, error)
	ListByUser(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]*models.Loan, error)
}
