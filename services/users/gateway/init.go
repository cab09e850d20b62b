package gateway

import (
	"github.com/piresc/loanhub/internal/pkg/mail"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// UserGW implements the user gateway interface
type UserGW struct {
	mailer mail.Sender
	cfg    *models.Config
}

// NewUserGW creates a new user gateway instance
func NewUserGW(mailer mail.Sender, cfg *models.Config) *UserGW {
	return &UserGW{
		mailer: mailer,
		cfg:    cfg,
	}
}
