package gateway

import (
	"github.com/piresc/loanhub/internal/pkg/mail"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// NotificationGW implements the notification gateway interface
type NotificationGW struct {
	mailer mail.Sender
	cfg    *models.Config
}

// NewNotificationGW creates a new notification gateway instance
func NewNotificationGW(mailer mail.Sender, cfg *models.Config) *NotificationGW {
	return &NotificationGW{
		mailer: mailer,
		cfg:    cfg,
	}
}
