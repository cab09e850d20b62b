package models

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus is the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// IsDecision reports whether s is a terminal outcome an employee may set
func (s LoanStatus) IsDecision() bool {
	return s == LoanStatusApproved || s == LoanStatusRejected
}

// Loan represents a loan application
type Loan struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	UserID    uuid.UUID    `json:"userId" db:"user_id"`
	Amount    float64      `json:"amount" db:"amount"`
	Purpose   string       `json:"purpose" db:"purpose"`
	Status    LoanStatus   `json:"status" db:"status"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	User      *UserSummary `json:"user,omitempty" db:"-"`
}

// Decide moves the loan to a terminal status.
// Without strict, a decided loan may be decided again and the last decision wins.
// With strict, only a pending loan may be decided.
func (l *Loan) Decide(status LoanStatus, strict bool) error {
	if !status.IsDecision() {
		return ErrInvalidStatus
	}
	if strict && l.Status != LoanStatusPending {
		return ErrAlreadyDecided
	}
	l.Status = status
	return nil
}

// ApplyLoanRequest represents a loan application request
type ApplyLoanRequest struct {
	UserID  string  `json:"userId,omitempty"`
	Amount  float64 `json:"amount"`
	Purpose string  `json:"purpose"`
}

// DecisionRequest represents a loan decision request
type DecisionRequest struct {
	Status LoanStatus `json:"status"`
}

// LoanDecidedEvent is published after a loan decision is stored
type LoanDecidedEvent struct {
	LoanID    uuid.UUID  `json:"loan_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Amount    float64    `json:"amount"`
	Purpose   string     `json:"purpose"`
	Status    LoanStatus `json:"status"`
	DecidedBy uuid.UUID  `json:"decided_by"`
	DecidedAt time.Time  `json:"decided_at"`
}

// LoanFilter narrows a loan listing. Zero fields match everything.
type LoanFilter struct {
	Status LoanStatus
	UserID uuid.UUID
}
