package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("test-secret-key", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("test-secret-key"), service.secretKey)
	assert.Equal(t, []byte("test-refresh-secret"), service.refreshSecretKey)
}

func TestGenerateToken(t *testing.T) {
	service := newTestService()
	userID := "user-123"
	role := "viewer"

	token, err := service.GenerateToken(userID, role)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 0)
}

func TestValidateToken(t *testing.T) {
	service := newTestService()
	userID := "user-123"
	role := "viewer"

	// Generate token
	token, err := service.GenerateToken(userID, role)
	assert.NoError(t, err)

	// Validate token
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := newTestService()

	// Invalid token format
	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1", "refresh-1", time.Minute, time.Hour)
	service2 := NewService("secret-key-2", "refresh-2", time.Minute, time.Hour)

	// Generate token with service1
	token, err := service1.GenerateToken("user-123", "viewer")
	assert.NoError(t, err)

	// Try to validate with service2 (wrong secret)
	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-secret-key", "test-refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateToken("user-123", "viewer")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := newTestService()
	userID := "user-456"
	role := "creator"

	// Generate
	token, err := service.GenerateToken(userID, role)
	assert.NoError(t, err)

	// Validate
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	service := newTestService()
	userID := "user-789"

	token, err := service.GenerateRefreshToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRefreshToken_NotValidAsAccessToken(t *testing.T) {
	service := newTestService()

	refresh, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	// Access and refresh tokens are signed with different secrets.
	_, err = service.ValidateToken(refresh)
	assert.Error(t, err)

	access, err := service.GenerateToken("user-123", "viewer")
	assert.NoError(t, err)

	_, err = service.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestGenerateToken_EmptyValues(t *testing.T) {
	service := newTestService()

	// Generate with empty values should still work
	token, err := service.GenerateToken("", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "", claims.UserID)
	assert.Equal(t, "", claims.Role)
}
