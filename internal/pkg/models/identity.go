package models

import (
	"strings"

	"github.com/google/uuid"
)

// Identity is the authenticated caller decoded from a bearer token
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsStaff reports whether the caller is an employee or admin
func (i Identity) IsStaff() bool {
	return i.Role == RoleEmployee || i.Role == RoleAdmin
}

// CanRead reports whether the caller may read records owned by owner
func (i Identity) CanRead(owner uuid.UUID) bool {
	return i.IsStaff() || i.UserID == owner
}

// OwnerFor picks the owner of a new record: the caller, or requested when the caller is an admin
func (i Identity) OwnerFor(requested string) (uuid.UUID, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || !i.IsAdmin() {
		return i.UserID, nil
	}
	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, ValidationError("invalid userId")
	}
	return id, nil
}
