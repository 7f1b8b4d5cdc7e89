package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// SessionClaims defines the custom claims embedded in a session token.
// The account ID travels in the registered Subject claim. PasswordHash is
// never part of the claims.
type SessionClaims struct {
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing signed session tokens.
//
// The account service only issues tokens; it never verifies them.
// ParseSession exists for the HTTP auth middleware, which is the sole
// consumer of token verification in this codebase.
type TokenService interface {
	// IssueSession creates a signed, self-contained session token carrying
	// the account's identity claims, expiring SessionTTL from now.
	IssueSession(accountID uuid.UUID, email, fullName string, role entity.Role) (string, error)

	// ParseSession validates a token string and returns its claims.
	ParseSession(tokenString string) (*SessionClaims, error)

	// SessionTTL returns the fixed lifetime of issued session tokens.
	SessionTTL() time.Duration
}
