package models

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses; specific errors wrap one of them.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrDeliveryFailed = errors.New("delivery failed")
)

var (
	ErrAlreadyRegistered  = fmt.Errorf("%w: email is already registered", ErrConflict)
	ErrCodeAlreadyLive    = fmt.Errorf("%w: an OTP has already been sent to this email", ErrConflict)
	ErrOTPNotFound        = fmt.Errorf("%w: no OTP found for this email", ErrNotFound)
	ErrOTPExpired         = fmt.Errorf("%w: OTP has expired", ErrValidation)
	ErrOTPMismatch        = fmt.Errorf("%w: invalid OTP", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrAccessDenied       = fmt.Errorf("%w: access denied", ErrForbidden)

	ErrInvalidStatus  = fmt.Errorf("%w: invalid status value", ErrValidation)
	ErrLoanNotFound   = fmt.Errorf("%w: loan not found", ErrNotFound)
	ErrAlreadyDecided = fmt.Errorf("%w: loan has already been decided", ErrConflict)

	ErrEmptyResponse    = fmt.Errorf("%w: response is required", ErrValidation)
	ErrQueryNotFound    = fmt.Errorf("%w: query not found", ErrNotFound)
	ErrAlreadyResponded = fmt.Errorf("%w: query has already been answered", ErrConflict)
)

// ValidationError returns a validation error carrying msg
func ValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
