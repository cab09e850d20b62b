package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

const userColumns = `id, name, email, password_hash, role, address, pincode, mobile_number,
		business_category, employee_role, created_at`

// CreateUser inserts a new user. A duplicate email returns models.ErrAlreadyRegistered.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, address, pincode,
			mobile_number, business_category, employee_role, created_at)
		VALUES (:id, :name, :email, :password_hash, :role, :address, :pincode,
			:mobile_number, :business_category, :employee_role, :created_at)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "users", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, user)
		return err
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// ListUsers returns all users, newest first
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	users := []*models.User{}
	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.SelectContext(ctx, &users, query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// EmailExists reports whether a user with email is registered
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &exists, query, email)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// getUserByField is a helper function to get a user by a specific column
func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &user, query, value)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
