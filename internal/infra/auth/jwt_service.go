// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// sessionTTL is the fixed lifetime of a session token. There is no refresh
// or revocation path, so expiry is the only way a session ends.
const sessionTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// The signing secret is process-wide configuration, loaded once at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    sessionTTL,
	}, nil
}

// IssueSession creates a signed HS256 token embedding the account's identity
// claims with an expiry of SessionTTL from now.
func (s *jwtService) IssueSession(accountID uuid.UUID, email, fullName string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		Email:    email,
		FullName: fullName,
		Role:     role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ParseSession validates a token string and returns its claims. Only the HTTP
// auth middleware calls this; the account service never verifies tokens.
func (s *jwtService) ParseSession(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// SessionTTL returns the fixed lifetime of issued session tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}
