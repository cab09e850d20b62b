package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/pkg/retry"
)

// NotifyLoanDecided emails the applicant the outcome of their loan
func (u *NotificationUC) NotifyLoanDecided(ctx context.Context, event *models.LoanDecidedEvent) error {
	if !event.Status.IsDecision() {
		return retry.Permanent(fmt.Errorf("loan %s: %w", event.LoanID, models.ErrInvalidStatus))
	}

	recipient, err := u.recipient(ctx, event.UserID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your loan application has been %s", event.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour loan application for %.2f (%s) was %s on %s.\n\n%s",
		recipient.Name, event.Amount, event.Purpose, event.Status,
		event.DecidedAt.UTC().Format(time.RFC1123), u.cfg.App.Name,
	)

	if err := u.send(ctx, recipient.Email, subject, body); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Loan decision notification sent",
		logger.String("loan_id", event.LoanID.String()),
		logger.String("status", string(event.Status)))
	return nil
}

// NotifyQueryResponded emails the submitter the response to their query
func (u *NotificationUC) NotifyQueryResponded(ctx context.Context, event *models.QueryRespondedEvent) error {
	if event.Response == "" {
		return retry.Permanent(fmt.Errorf("query %s: %w", event.QueryID, models.ErrEmptyResponse))
	}

	recipient, err := u.recipient(ctx, event.UserID)
	if err != nil {
		return err
	}

	subject := "We have responded to your query"
	body := fmt.Sprintf(
		"Hello %s,\n\nYou asked:\n%s\n\nOur response:\n%s\n\n%s",
		recipient.Name, event.Query, event.Response, u.cfg.App.Name,
	)

	if err := u.send(ctx, recipient.Email, subject, body); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Query response notification sent",
		logger.String("query_id", event.QueryID.String()))
	return nil
}

// recipient looks up the user; a user that no longer exists is never retried
func (u *NotificationUC) recipient(ctx context.Context, userID uuid.UUID) (*models.UserSummary, error) {
	recipient, err := u.notificationRepo.GetRecipient(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, retry.Permanent(err)
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	return recipient, nil
}

func (u *NotificationUC) send(ctx context.Context, to, subject, body string) error {
	return u.retrier.Execute(ctx, func(ctx context.Context) error {
		return u.notificationGW.SendMail(ctx, to, subject, body)
	})
}
