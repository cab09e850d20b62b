package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/loanhub/internal/pkg/jwt"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Register completes a registration for an email holding a live, matching code
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if err := u.checkOTP(ctx, email, req.OTP); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.passwordCost())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Address:      strings.TrimSpace(req.Address),
		Pincode:      strings.TrimSpace(req.Pincode),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		CreatedAt:    u.now(),
	}
	switch req.Role {
	case models.RoleBusiness:
		user.BusinessCategory = strings.TrimSpace(req.BusinessCategory)
	case models.RoleEmployee:
		user.EmployeeRole = strings.TrimSpace(req.EmployeeRole)
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.userRepo.DeleteOTP(ctx, email); err != nil {
		logger.WarnCtx(ctx, "Failed to delete consumed OTP",
			logger.String("email", email),
			logger.ErrorField(err))
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", string(user.Role)))

	return u.authResponse(user)
}

// Login authenticates email and password
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, models.ValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return u.authResponse(user)
}

func (u *UserUC) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user.Public(),
		ExpiresAt: expiresAt,
	}, nil
}

func (u *UserUC) passwordCost() int {
	if u.bcryptCost > 0 {
		return u.bcryptCost
	}
	return bcrypt.DefaultCost
}

func validateRegistration(req *models.RegisterRequest) error {
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"role", string(req.Role)},
		{"address", req.Address},
		{"pincode", req.Pincode},
		{"mobileNumber", req.MobileNumber},
		{"otp", req.OTP},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return models.ValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	if !req.Role.Valid() {
		return models.ValidationError(fmt.Sprintf("invalid role %q", req.Role))
	}
	if req.Role == models.RoleAdmin {
		return models.ValidationError("admin accounts cannot be registered")
	}

	return nil
}
