package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// GetUser returns the user with the given id
func (u *UserUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns every registered user
func (u *UserUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	list, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// EnsureAdmin creates the bootstrap administrator on first startup
func (u *UserUC) EnsureAdmin(ctx context.Context) error {
	admin := u.cfg.Admin
	if admin.Email == "" || admin.Password == "" {
		return fmt.Errorf("admin bootstrap email and password are required")
	}

	email, err := normalizeEmail(admin.Email)
	if err != nil {
		return fmt.Errorf("admin bootstrap email: %w", err)
	}

	exists, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		logger.Debug("Admin user already exists", logger.String("email", email))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), u.passwordCost())
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    u.now(),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		// another instance won the race
		if errors.Is(err, models.ErrAlreadyRegistered) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Admin user created",
		logger.String("user_id", user.ID.String()),
		logger.String("email", email))

	return nil
}
