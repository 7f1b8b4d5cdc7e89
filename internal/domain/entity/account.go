// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered user.
// PasswordHash holds the bcrypt-derived secret and must never appear in any
// outward projection of the account.
type Account struct {
	ID             uuid.UUID // The unique identifier, assigned by the store at creation.
	Email          string    // The login identifier; exactly one account may exist per email.
	PasswordHash   string    // The salted bcrypt hash of the account's credential.
	FullName       string    // Optional display name.
	PhoneNumber    string    // Optional contact number, no uniqueness constraint.
	Username       string    // Optional handle, no uniqueness constraint.
	ProfilePicture string    // Optional avatar URL.
	Role           Role      // Either RoleUser or RoleAdmin; defaults to RoleUser at creation.
	CreatedAt      time.Time // Set once at creation, immutable thereafter.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
