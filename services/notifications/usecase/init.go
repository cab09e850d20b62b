package usecase

import (
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/pkg/retry"
	"github.com/piresc/loanhub/services/notifications"
)

type NotificationUC struct {
	notificationRepo notifications.NotificationRepo
	notificationGW   notifications.NotificationGW
	cfg              *models.Config
	retrier          *retry.Retrier
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	notificationRepo notifications.NotificationRepo,
	notificationGW notifications.NotificationGW,
	cfg *models.Config,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		notificationGW:   notificationGW,
		cfg:              cfg,
		retrier:          retry.NewWithDefaults(nil),
	}
}
