package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// LoanRepo implements the loan repository interface
type LoanRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLoanRepo creates a new loan repository instance
func NewLoanRepo(cfg *models.Config, db *sqlx.DB) *LoanRepo {
	return &LoanRepo{
		cfg: cfg,
		db:  db,
	}
}
