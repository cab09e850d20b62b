package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

// GetRecipient retrieves the name and email of a user
func (r *NotificationRepo) GetRecipient(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error) {
	query := `SELECT id, name, email, role FROM users WHERE id = $1`

	var recipient models.UserSummary
	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &recipient, query, userID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	return &recipient, nil
}
