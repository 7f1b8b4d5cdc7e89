// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is
// not found. Implementations return it instead of surfacing driver errors so
// the application layer can branch on the outcome.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	// Email is an exact-match key; callers normalize before both the
	// uniqueness check and the write so the two paths stay consistent.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The store assigns ID and CreatedAt and
	// writes them back onto the entity.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account in place.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account with the given ID. Deleting an unknown ID
	// returns ErrAccountNotFound rather than silently succeeding.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll returns every account. No ordering is guaranteed.
	ListAll(ctx context.Context) ([]*entity.Account, error)
}
