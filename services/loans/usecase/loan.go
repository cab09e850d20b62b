package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
)

// Apply creates a pending loan owned by the caller.
// Only an admin may name another owner through req.UserID.
func (u *LoanUC) Apply(ctx context.Context, caller models.Identity, req *models.ApplyLoanRequest) (*models.Loan, error) {
	owner, err := caller.OwnerFor(req.UserID)
	if err != nil {
		return nil, err
	}

	purpose := strings.TrimSpace(req.Purpose)
	switch {
	case req.Amount <= 0:
		return nil, models.ValidationError("amount must be greater than zero")
	case purpose == "":
		return nil, models.ValidationError("purpose is required")
	}

	loan := &models.Loan{
		ID:        uuid.New(),
		UserID:    owner,
		Amount:    req.Amount,
		Purpose:   purpose,
		Status:    models.LoanStatusPending,
		CreatedAt: u.now(),
	}

	if err := u.loanRepo.CreateLoan(ctx, loan); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	logger.InfoCtx(ctx, "Loan application submitted",
		logger.String("loan_id", loan.ID.String()),
		logger.String("user_id", owner.String()),
		logger.Float64("amount", loan.Amount))

	return loan, nil
}

// Decide sets a loan to approved or rejected and publishes the decision
func (u *LoanUC) Decide(ctx context.Context, caller models.Identity, loanID uuid.UUID, status models.LoanStatus) (*models.Loan, error) {
	if !status.IsDecision() {
		return nil, models.ErrInvalidStatus
	}

	loan, err := u.loanRepo.GetLoanByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, models.ErrLoanNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	strict := u.cfg.Loans.StrictDecisions
	previous := loan.Status
	if err := loan.Decide(status, strict); err != nil {
		return nil, err
	}

	updated, err := u.loanRepo.UpdateLoanStatus(ctx, loan.ID, status, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to update loan status: %w", err)
	}
	if !updated {
		// decided or removed by someone else since we read it
		if strict {
			return nil, models.ErrAlreadyDecided
		}
		return nil, models.ErrLoanNotFound
	}

	decidedAt := u.now()
	logger.InfoCtx(ctx, "Loan decided",
		logger.String("loan_id", loan.ID.String()),
		logger.String("from", string(previous)),
		logger.String("to", string(status)),
		logger.String("decided_by", caller.UserID.String()))

	event := &models.LoanDecidedEvent{
		LoanID:    loan.ID,
		UserID:    loan.UserID,
		Amount:    loan.Amount,
		Purpose:   loan.Purpose,
		Status:    status,
		DecidedBy: caller.UserID,
		DecidedAt: decidedAt,
	}
	if err := u.loanGW.PublishLoanDecided(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish loan decision",
			logger.String("loan_id", loan.ID.String()),
			logger.ErrorField(err))
	}

	return loan, nil
}

// ListPending returns every pending loan with its applicant
func (u *LoanUC) ListPending(ctx context.Context) ([]*models.Loan, error) {
	return u.list(ctx, models.LoanFilter{Status: models.LoanStatusPending})
}

// ListAll returns every loan
func (u *LoanUC) ListAll(ctx context.Context) ([]*models.Loan, error) {
	return u.list(ctx, models.LoanFilter{})
}

// ListByUser returns the loans of userID. Customers and businesses may only list their own.
func (u *LoanUC) ListByUser(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]*models.Loan, error) {
	if !caller.CanRead(userID) {
		return nil, models.ErrAccessDenied
	}
	return u.list(ctx, models.LoanFilter{UserID: userID})
}

func (u *LoanUC) list(ctx context.Context, filter models.LoanFilter) ([]*models.Loan, error) {
	list, err := u.loanRepo.ListLoans(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return list, nil
}
