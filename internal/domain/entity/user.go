// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns farms and authenticates against the API.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier.
	Phone        *string   // Optional, unique when set. Alternative login identifier.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized.
	FirstName    string
	LastName     string
	Role         Role
	IsOnboarding bool      // True until the user has completed onboarding (created a first farm).
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// OwnerID returns the user's own ID, so users can be checked with OwnedBy.
func (u *User) OwnerID() uuid.UUID {
	if u == nil {
		return uuid.Nil
	}

	return u.ID
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy of the user without credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
