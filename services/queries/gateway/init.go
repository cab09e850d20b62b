package gateway

import (
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/pkg/nsq"
)

// QueryGW implements the query gateway interface
type QueryGW struct {
	publisher nsq.Publisher
	cfg       *models.Config
}

// NewQueryGW creates a new query gateway instance
func NewQueryGW(publisher nsq.Publisher, cfg *models.Config) *QueryGW {
	return &QueryGW{
		publisher: publisher,
		cfg:       cfg,
	}
}
