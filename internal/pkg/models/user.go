package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the account type of a user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleBusiness, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account
type User struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Role             Role      `json:"role" db:"role"`
	Address          string    `json:"address" db:"address"`
	Pincode          string    `json:"pincode" db:"pincode"`
	MobileNumber     string    `json:"mobileNumber" db:"mobile_number"`
	BusinessCategory string    `json:"businessCategory,omitempty" db:"business_category"`
	EmployeeRole     string    `json:"employeeRole,omitempty" db:"employee_role"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary is the subset of a user joined onto loans, queries and transactions
type UserSummary struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
	Role  Role      `json:"role,omitempty" db:"role"`
}

// PublicUser is the user representation returned alongside a token
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Public returns the token response view of u
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// RegisterRequest represents a request to complete registration
type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             Role   `json:"role"`
	Address          string `json:"address"`
	Pincode          string `json:"pincode"`
	MobileNumber     string `json:"mobileNumber"`
	BusinessCategory string `json:"businessCategory,omitempty"`
	EmployeeRole     string `json:"employeeRole,omitempty"`
	OTP              string `json:"otp"`
}

// LoginRequest represents a request to login with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string     `json:"token"`
	User      PublicUser `json:"user"`
	ExpiresAt int64      `json:"expiresAt"`
}
