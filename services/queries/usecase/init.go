package usecase

import (
	"time"

	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/queries"
)

type QueryUC struct {
	queryRepo queries.QueryRepo
	queryGW   queries.QueryGW
	cfg       *models.Config
	now       func() time.Time
}

// NewQueryUC creates a new query usecase instance
func NewQueryUC(
	queryRepo queries.QueryRepo,
	queryGW queries.QueryGW,
	cfg *models.Config,
) *QueryUC {
	return &QueryUC{
		queryRepo: queryRepo,
		queryGW:   queryGW,
		cfg:       cfg,
		now:       time.Now,
	}
}
