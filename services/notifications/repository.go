package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loanhub/services/notifications NotificationRepo

// NotificationRepo resolves who receives a notification
type NotificationRepo interface {
	GetRecipient(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error)
}
