// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role is optional and defaults to entity.RoleUser when empty.
type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	PhoneNumber    string
	Username       string
	ProfilePicture string
	Role           entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateAccountInput carries a partial update. A nil field means "leave
// unchanged"; a non-nil pointer to an empty string means "explicitly clear".
type UpdateAccountInput struct {
	Email          *string
	Password       *string
	FullName       *string
	PhoneNumber    *string
	Username       *string
	ProfilePicture *string
	Role           *entity.Role
}

// --- Output DTOs ---

// LoginOutput returns the issued session token alongside the account.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListAll(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
