package jwt_test

import (
	"testing"
	"time"

	"healthhub-backend/config"
	"healthhub-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessExpiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	s := newService(15 * time.Minute)

	userID := uuid.New()
	token, tokenID, err := s.GenerateAccessToken(userID, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_RefreshTokenCarriesType(t *testing.T) {
	s := newService(15 * time.Minute)

	token, _, err := s.GenerateRefreshToken(uuid.New(), "a@b.com")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, claims.TokenType)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	s := newService(15 * time.Minute)

	token, _, err := s.GenerateAccessToken(uuid.New(), "a@b.com")
	require.NoError(t, err)

	other := jwt.NewJWTService(config.JWTConfig{Secret: "different-secret"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	s := newService(-1 * time.Minute)

	token, _, err := s.GenerateAccessToken(uuid.New(), "a@b.com")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	s := newService(15 * time.Minute)

	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}
