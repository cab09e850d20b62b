package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
)

// loanRow is a loan joined with its applicant
type loanRow struct {
	ID        uuid.UUID         `db:"id"`
	UserID    uuid.UUID         `db:"user_id"`
	Amount    float64           `db:"amount"`
	Purpose   string            `db:"purpose"`
	Status    models.LoanStatus `db:"status"`
	CreatedAt time.Time         `db:"created_at"`
	UserName  string            `db:"user_name"`
	UserEmail string            `db:"user_email"`
	UserRole  models.Role       `db:"user_role"`
}

func (r loanRow) toModel() *models.Loan {
	return &models.Loan{
		ID:        r.ID,
		UserID:    r.UserID,
		Amount:    r.Amount,
		Purpose:   r.Purpose,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		User: &models.UserSummary{
			ID:    r.UserID,
			Name:  r.UserName,
			Email: r.UserEmail,
			Role:  r.UserRole,
		},
	}
}

const selectLoans = `
	SELECT l.id, l.user_id, l.amount, l.purpose, l.status, l.created_at,
		u.name AS user_name, u.email AS user_email, u.role AS user_role
	FROM loans l
	JOIN users u ON u.id = l.user_id`

// CreateLoan inserts a new loan. An unknown owner returns models.ErrUserNotFound.
func (r *LoanRepo) CreateLoan(ctx context.Context, loan *models.Loan) error {
	query := `
		INSERT INTO loans (id, user_id, amount, purpose, status, created_at)
		VALUES (:id, :user_id, :amount, :purpose, :status, :created_at)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "loans", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, loan)
		return err
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert loan: %w", err)
	}

	return nil
}

// GetLoanByID retrieves a loan with its applicant
func (r *LoanRepo) GetLoanByID(ctx context.Context, id uuid.UUID) (*models.Loan, error) {
	query := selectLoans + ` WHERE l.id = $1`

	var row loanRow
	err := nrpkg.WithDatastoreSegment(ctx, "loans", "SELECT", func() error {
		return r.db.GetContext(ctx, &row, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return row.toModel(), nil
}

// ListLoans returns loans matching filter, newest first
func (r *LoanRepo) ListLoans(ctx context.Context, filter models.LoanFilter) ([]*models.Loan, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if filter.UserID != uuid.Nil {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("l.user_id = $%d", len(args)))
	}

	query := selectLoans
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY l.created_at DESC"

	var rows []loanRow
	err := nrpkg.WithDatastoreSegment(ctx, "loans", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	list := make([]*models.Loan, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

// UpdateLoanStatus sets the status of a loan
func (r *LoanRepo) UpdateLoanStatus(ctx context.Context, id uuid.UUID, status models.LoanStatus, onlyPending bool) (bool, error) {
	query := `UPDATE loans SET status = $1 WHERE id = $2`
	args := []interface{}{status, id}
	if onlyPending {
		query += ` AND status = $3`
		args = append(args, models.LoanStatusPending)
	}

	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, "loans", "UPDATE", func() error {
		var err error
		result, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to update loan status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
