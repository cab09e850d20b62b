package loans

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/loanhub/services/loans LoanGW

// LoanGW defines the loan gateways interface
type LoanGW interface {
	// NSQ Gateway
	PublishLoanDecided(ctx context.Context, event *models.LoanDecidedEvent) error
}
