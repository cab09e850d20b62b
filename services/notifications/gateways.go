package notifications

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/loanhub/services/notifications NotificationGW

// NotificationGW defines the notification gateways interface
type NotificationGW interface {
	// Mail Gateway
	SendMail(ctx context.Context, to, subject, body string) error
}
