package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loanhub/services/queries QueryUC

// QueryUC represents the query/response usecase
type QueryUC interface {
	Submit(ctx context.Context, caller models.Identity, req *models.SubmitQueryRequest) (*models.Query, error)
	ListAll(ctx context.Context) ([]*models.Query, error)
	Respond(ctx context.Context, caller models.Identity, queryID uuid.UUID, response string) (*models.Query, error)
}
