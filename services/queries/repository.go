package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loanhub/services/queries QueryRepo

// QueryRepo defines the query store
type QueryRepo interface {
	CreateQuery(ctx context.Context, query *models.Query) error
	GetQueryByID(ctx context.Context, id uuid.UUID) (*models.Query, error)
	ListQueries(ctx context.Context) ([]*models.Query, error)

	// UpdateResponse reports false when no row matched; with onlyUnanswered an answered query never matches
	UpdateResponse(ctx context.Context, id uuid.UUID, response string, onlyUnanswered bool) (bool, error)
}
