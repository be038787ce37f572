package auth

import (
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "amunitsiia-shop",
		MaxRefreshCount:        2,
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "mykola",
		Email:    "mykola@example.com",
	}
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	assert.Equal(t, []byte("test-secret"), svc.keys[TokenTypeRefresh].secret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTestInput())

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()
	input.IsStaff = true
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, input.UserID.String(), claims.UserID)
		assert.Equal(t, input.Username, claims.Username)
		assert.Equal(t, input.Email, claims.Email)
		assert.True(t, claims.IsStaff)
		assert.NotEmpty(t, claims.ID)

		id, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, input.UserID, id)
		assert.Greater(t, claims.GetRemainingTTL(), 14*time.Minute)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-of-32-characters", Issuer: "amunitsiia-shop"})
		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "amunitsiia-shop",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			UserID:    input.UserID.String(),
			TokenType: TokenTypeAccess,
		}
		token, err := svc.sign(claims)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "amunitsiia-shop",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			TokenType: TokenTypeAccess,
		}
		token, err := svc.sign(claims)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrMissingUserID)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Zero(t, claims.RefreshCount)
	assert.Empty(t, claims.Username, "refresh tokens carry no profile data")

	input.IsStaff = true
	rotated, err := svc.RefreshTokenPair(claims, input)
	require.NoError(t, err)

	access, err := svc.ValidateAccessToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.True(t, access.IsStaff)

	claims, err = svc.ValidateRefreshToken(rotated.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.RefreshCount)

	t.Run("different user", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(claims, newTestInput())
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("limit", func(t *testing.T) {
		again, err := svc.RefreshTokenPair(claims, input)
		require.NoError(t, err)
		claims, err := svc.ValidateRefreshToken(again.RefreshToken)
		require.NoError(t, err)

		_, err = svc.RefreshTokenPair(claims, input)
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})
}
