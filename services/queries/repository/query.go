package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

type queryRow struct {
	ID        uuid.UUID      `db:"id"`
	UserID    uuid.UUID      `db:"user_id"`
	Query     string         `db:"query"`
	Response  sql.NullString `db:"response"`
	CreatedAt time.Time      `db:"created_at"`
	UserName  string         `db:"user_name"`
	UserEmail string         `db:"user_email"`
}

func (r queryRow) toModel() *models.Query {
	q := &models.Query{
		ID:        r.ID,
		UserID:    r.UserID,
		Query:     r.Query,
		CreatedAt: r.CreatedAt,
		User: &models.UserSummary{
			ID:    r.UserID,
			Name:  r.UserName,
			Email: r.UserEmail,
		},
	}
	if r.Response.Valid {
		response := r.Response.String
		q.Response = &response
	}
	return q
}

const selectQueries = `
	SELECT q.id, q.user_id, q.query, q.response, q.created_at,
		u.name AS user_name, u.email AS user_email
	FROM queries q
	JOIN users u ON u.id = q.user_id`

// CreateQuery inserts a new query. An unknown owner returns models.ErrUserNotFound.
func (r *QueryRepo) CreateQuery(ctx context.Context, query *models.Query) error {
	stmt := `
		INSERT INTO queries (id, user_id, query, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "queries", "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, stmt, query.ID, query.UserID, query.Query, query.Response, query.CreatedAt)
		return err
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert query: %w", err)
	}

	return nil
}

// GetQueryByID retrieves a query with its submitter
func (r *QueryRepo) GetQueryByID(ctx context.Context, id uuid.UUID) (*models.Query, error) {
	var row queryRow
	err := nrpkg.WithDatastoreSegment(ctx, "queries", "SELECT", func() error {
		return r.db.GetContext(ctx, &row, selectQueries+` WHERE q.id = $1`, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrQueryNotFound
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}

	return row.toModel(), nil
}

// ListQueries returns every query, newest first
func (r *QueryRepo) ListQueries(ctx context.Context) ([]*models.Query, error) {
	var rows []queryRow
	err := nrpkg.WithDatastoreSegment(ctx, "queries", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, selectQueries+` ORDER BY q.created_at DESC`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	list := make([]*models.Query, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

// UpdateResponse sets the response of a query
func (r *QueryRepo) UpdateResponse(ctx context.Context, id uuid.UUID, response string, onlyUnanswered bool) (bool, error) {
	stmt := `UPDATE queries SET response = $1 WHERE id = $2`
	if onlyUnanswered {
		stmt += ` AND response IS NULL`
	}

	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, "queries", "UPDATE", func() error {
		var err error
		result, err = r.db.ExecContext(ctx, stmt, response, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to update query response: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
