package users

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/loanhub/services/users UserGW

// UserGW defines the user gateways interface
type UserGW interface {
	// Mail Gateway
	SendOTP(ctx context.Context, email, code string, expiresAt time.Time) error
}
