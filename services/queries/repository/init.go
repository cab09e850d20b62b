package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// QueryRepo implements the query repository interface
type QueryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewQueryRepo creates a new query repository instance
func NewQueryRepo(cfg *models.Config, db *sqlx.DB) *QueryRepo {
	return &QueryRepo{
		cfg: cfg,
		db:  db,
	}
}
