package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes money leaving and entering an account
type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionDeposit TransactionType = "deposit"
)

// Transaction represents a financial transaction record
type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"userId" db:"user_id"`
	Amount    float64         `json:"amount" db:"amount"`
	Type      TransactionType `json:"type" db:"type"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	User      *UserSummary    `json:"user,omitempty" db:"-"`
}

// TransactionFilter narrows a transaction listing. A zero UserID matches everyone.
type TransactionFilter struct {
	UserID uuid.UUID
}
