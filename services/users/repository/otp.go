package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/loanhub/internal/pkg/constants"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// SaveOTP stores the code for otp.Email, replacing any previous one.
// ttl is how long Redis keeps the record, which may outlive otp.ExpiresAt.
func (r *UserRepo) SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	if err := r.redisClient.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP returns the stored code for email or models.ErrOTPNotFound
func (r *UserRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, email)

	data, err := r.redisClient.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal(data, &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes the code for email. Deleting a missing code is not an error.
func (r *UserRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}
