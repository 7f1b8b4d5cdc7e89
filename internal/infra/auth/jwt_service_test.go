package auth

import (
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndParseSession(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.IssueSession(accountID, "a@x.com", "Ada Lovelace", entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.FullName)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_SessionExpiresInThirtyDays(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, jwtService.SessionTTL())

	token, err := jwtService.IssueSession(uuid.New(), "a@x.com", "", entity.RoleUser)
	require.NoError(t, err)

	claims, err := jwtService.ParseSession(token)
	require.NoError(t, err)

	expectedExpiry := time.Now().Add(30 * 24 * time.Hour)
	assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ParseSession("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.IssueSession(uuid.New(), "a@x.com", "", entity.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.ParseSession(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session signing secret must be provided")
}
