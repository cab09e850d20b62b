package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/loanhub/internal/pkg/mail"
)

// SendOTP mails the one-time code to email
func (g *UserGW) SendOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	minutes := int(g.cfg.OTP.Lifetime.Minutes())
	if minutes <= 0 {
		minutes = 10
	}

	return g.mailer.Send(ctx, mail.Message{
		To:      email,
		Subject: fmt.Sprintf("Your %s verification code", g.cfg.App.Name),
		Body: fmt.Sprintf(
			"Your OTP is %s. It is valid for %d minutes (until %s).",
			code, minutes, expiresAt.UTC().Format(time.RFC1123),
		),
	})
}
