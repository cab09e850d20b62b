package queries

import (
	"context"

	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/loanhub/services/queries QueryGW

// QueryGW defines the query gateways interface
type QueryGW interface {
	// NSQ Gateway
	PublishQueryResponded(ctx context.Context, event *models.QueryRespondedEvent) error
}
