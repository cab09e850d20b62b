package notifications

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loanhub/services/notifications NotificationUC

// NotificationUC turns domain events into customer emails
type NotificationUC interface {
	NotifyLoanDecided(ctx context.Context, event *models.LoanDecidedEvent) error
	NotifyQueryResponded(ctx context.Context, event *models.QueryRespondedEvent) error
}
