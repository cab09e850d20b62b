package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// NotificationRepo implements the notification repository interface
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}
