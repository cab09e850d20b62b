package usecase

import (
	"time"

	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/users"
)

type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config

	now          func() time.Time
	generateCode func(digits int) (string, error)
	bcryptCost   int
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:     userRepo,
		userGW:       userGW,
		cfg:          cfg,
		now:          time.Now,
		generateCode: generateNumericCode,
	}
}
