package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"

	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// otpDigits is the fixed length of every issued code
const otpDigits = 6

// RequestOTP issues a one-time code for an unregistered email and mails it
func (u *UserUC) RequestOTP(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	exists, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return models.ErrAlreadyRegistered
	}

	now := u.now()

	existing, err := u.userRepo.GetOTP(ctx, email)
	switch {
	case err == nil && !existing.Expired(now):
		return models.ErrCodeAlreadyLive
	case err != nil && !errors.Is(err, models.ErrOTPNotFound):
		return fmt.Errorf("failed to get OTP: %w", err)
	}

	if err := u.userRepo.DeleteOTP(ctx, email); err != nil {
		return fmt.Errorf("failed to delete previous OTP: %w", err)
	}

	code, err := u.generateCode(otpDigits)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	otp := &models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.OTP.Lifetime),
	}
	if err := u.userRepo.SaveOTP(ctx, otp, u.cfg.OTP.Lifetime+u.cfg.OTP.Retention); err != nil {
		return fmt.Errorf("failed to save OTP: %w", err)
	}

	if err := u.userGW.SendOTP(ctx, email, code, otp.ExpiresAt); err != nil {
		// a code nobody received must not block the next request
		if delErr := u.userRepo.DeleteOTP(ctx, email); delErr != nil {
			logger.WarnCtx(ctx, "Failed to delete undelivered OTP",
				logger.String("email", email),
				logger.ErrorField(delErr))
		}
		if errors.Is(err, models.ErrDeliveryFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}

	logger.InfoCtx(ctx, "OTP issued",
		logger.String("email", email),
		logger.Duration("lifetime", u.cfg.OTP.Lifetime))

	return nil
}

// VerifyOTP checks the code without consuming it; registration consumes it
func (u *UserUC) VerifyOTP(ctx context.Context, email, code string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	return u.checkOTP(ctx, email, code)
}

func (u *UserUC) checkOTP(ctx context.Context, email, code string) error {
	otp, err := u.userRepo.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrOTPNotFound) {
			return err
		}
		return fmt.Errorf("failed to get OTP: %w", err)
	}

	if otp.Expired(u.now()) {
		if err := u.userRepo.DeleteOTP(ctx, email); err != nil {
			logger.WarnCtx(ctx, "Failed to delete expired OTP",
				logger.String("email", email),
				logger.ErrorField(err))
		}
		return models.ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(strings.TrimSpace(code))) != 1 {
		return models.ErrOTPMismatch
	}

	return nil
}

// generateNumericCode returns a uniformly random code of exactly digits digits
func generateNumericCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", models.ValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", models.ValidationError("invalid email address")
	}
	return email, nil
}
