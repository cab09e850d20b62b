package loans

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loanhub/services/loans LoanRepo

// LoanRepo defines the loan store
type LoanRepo interface {
	CreateLoan(ctx context.Context, loan *models.Loan) error
	GetLoanByID(ctx context.Context, id uuid.UUID) (*models.Loan, error)
	ListLoans(ctx context.Context, filter models.LoanFilter) ([]*models.Loan, error)

	// UpdateLoanStatus reports false when no row matched; with onlyPending a decided loan never matches
	UpdateLoanStatus(ctx context.Context, id uuid.UUID, status models.LoanStatus, onlyPending bool) (bool, error)
}
