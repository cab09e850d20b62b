package models

import (
	"time"

	"github.com/google/uuid"
)

// Query represents a free-text question submitted by a customer
type Query struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	UserID    uuid.UUID    `json:"userId" db:"user_id"`
	Query     string       `json:"query" db:"query"`
	Response  *string      `json:"response,omitempty" db:"response"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	User      *UserSummary `json:"user,omitempty" db:"-"`
}

// Answered reports whether a response has been attached
func (q *Query) Answered() bool {
	return q.Response != nil
}

// Respond attaches a response.
// Without strict, an existing response is replaced.
func (q *Query) Respond(text string, strict bool) error {
	if text == "" {
		return ErrEmptyResponse
	}
	if strict && q.Answered() {
		return ErrAlreadyResponded
	}
	q.Response = &text
	return nil
}

// SubmitQueryRequest represents a query submission
type SubmitQueryRequest struct {
	UserID string `json:"userId,omitempty"`
	Query  string `json:"query"`
}

// RespondQueryRequest represents a response to a query
type RespondQueryRequest struct {
	Response string `json:"response"`
}

// QueryRespondedEvent is published after a response is stored
type QueryRespondedEvent struct {
	QueryID     uuid.UUID `json:"query_id"`
	UserID      uuid.UUID `json:"user_id"`
	Query       string    `json:"query"`
	Response    string    `json:"response"`
	RespondedBy uuid.UUID `json:"responded_by"`
	RespondedAt time.Time `json:"responded_at"`
}
