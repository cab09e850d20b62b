package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loanhub/services/users UserRepo

// UserRepo defines the credential store and OTP store
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// OTP storage, one record per email
	SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}
