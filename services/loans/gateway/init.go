package gateway

import (
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/pkg/nsq"
)

// LoanGW implements the loan gateway interface
type LoanGW struct {
	publisher nsq.Publisher
	cfg       *models.Config
}

// NewLoanGW creates a new loan gateway instance
func NewLoanGW(publisher nsq.Publisher, cfg *models.Config) *LoanGW {
	return &LoanGW{
		publisher: publisher,
		cfg:       cfg,
	}
}
