package usecase

import (
	"time"

	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/loans"
)

type LoanUC struct {
	loanRepo loans.LoanRepo
	loanGW   loans.LoanGW
	cfg      *models.Config
	now      func() time.Time
}

// NewLoanUC creates a new loan usecase instance
func NewLoanUC(
	loanRepo loans.LoanRepo,
	loanGW loans.LoanGW,
	cfg *models.Config,
) *LoanUC {
	return &LoanUC{
		loanRepo: loanRepo,
		loanGW:   loanGW,
		cfg:      cfg,
		now:      time.Now,
	}
}
