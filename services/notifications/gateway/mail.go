package gateway

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/mail"
)

// SendMail delivers a plain-text notification
func (g *NotificationGW) SendMail(ctx context.Context, to, subject, body string) error {
	return g.mailer.Send(ctx, mail.Message{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}
