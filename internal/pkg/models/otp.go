package models

import (
	"time"
)

// OTP represents a one-time code that proves ownership of an email address
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its lifetime at now
func (o *OTP) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}

// OTPRequest represents a request for a new one-time code
type OTPRequest struct {
	Email string `json:"email"`
}

// VerifyRequest represents a request to verify a one-time code
type VerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
