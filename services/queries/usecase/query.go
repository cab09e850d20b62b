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

// Submit stores a new unanswered query owned by the caller
func (u *QueryUC) Submit(ctx context.Context, caller models.Identity, req *models.SubmitQueryRequest) (*models.Query, error) {
	owner, err := caller.OwnerFor(req.UserID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Query)
	if text == "" {
		return nil, models.ValidationError("query is required")
	}

	query := &models.Query{
		ID:        uuid.New(),
		UserID:    owner,
		Query:     text,
		CreatedAt: u.now(),
	}

	if err := u.queryRepo.CreateQuery(ctx, query); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	logger.InfoCtx(ctx, "Query submitted",
		logger.String("query_id", query.ID.String()),
		logger.String("user_id", owner.String()))

	return query, nil
}

// ListAll returns every query with its submitter
func (u *QueryUC) ListAll(ctx context.Context) ([]*models.Query, error) {
	list, err := u.queryRepo.ListQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	return list, nil
}

// Respond attaches a response to a query and publishes it.
// A second response replaces the first unless strict responses are configured.
func (u *QueryUC) Respond(ctx context.Context, caller models.Identity, queryID uuid.UUID, response string) (*models.Query, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, models.ErrEmptyResponse
	}

	query, err := u.queryRepo.GetQueryByID(ctx, queryID)
	if err != nil {
		if errors.Is(err, models.ErrQueryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}

	strict := u.cfg.Queries.StrictResponses
	replaced := query.Answered()
	if err := query.Respond(response, strict); err != nil {
		return nil, err
	}

	updated, err := u.queryRepo.UpdateResponse(ctx, query.ID, response, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to update query response: %w", err)
	}
	if !updated {
		if strict {
			return nil, models.ErrAlreadyResponded
		}
		return nil, models.ErrQueryNotFound
	}

	respondedAt := u.now()
	logger.InfoCtx(ctx, "Query responded",
		logger.String("query_id", query.ID.String()),
		logger.Bool("replaced", replaced),
		logger.String("responded_by", caller.UserID.String()))

	event := &models.QueryRespondedEvent{
		QueryID:     query.ID,
		UserID:      query.UserID,
		Query:       query.Query,
		Response:    response,
		RespondedBy: caller.UserID,
		RespondedAt: respondedAt,
	}
	if err := u.queryGW.PublishQueryResponded(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish query response",
			logger.String("query_id", query.ID.String()),
			logger.ErrorField(err))
	}

	return query, nil
}
