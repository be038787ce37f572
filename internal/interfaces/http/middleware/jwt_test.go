package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
}

func newTestTokenPair(t *testing.T, jwtService *auth.JWTService, staff bool) (*auth.TokenPair, auth.GenerateTokenInput) {
	t.Helper()
	input := auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "petro",
		Email:    "petro@example.com",
		IsStaff:  staff,
	}
	pair, err := jwtService.GenerateTokenPair(input)
	require.NoError(t, err)
	return pair, input
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func serve(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()

	router := gin.New()
	router.Use(JWTAuthMiddleware(jwtService, blacklist, nil))
	router.GET("/me", func(c *gin.Context) {
		id := GetJWTUserID(c)
		require.NotNil(t, id)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "ctx_user": c.GetString(JWTUserIDKey)})
	})

	t.Run("valid token exposes the user", func(t *testing.T) {
		pair, input := newTestTokenPair(t, jwtService, false)
		rec := serve(router, http.MethodGet, "/me", pair.AccessToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), input.UserID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("basic scheme is not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(AuthHeaderKey, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/me", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrCodeTokenInvalid, decodeError(t, rec).Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		pair, _ := newTestTokenPair(t, jwtService, false)
		rec := serve(router, http.MethodGet, "/me", pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("blacklisted jti is revoked", func(t *testing.T) {
		pair, _ := newTestTokenPair(t, jwtService, false)
		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Minute))

		rec := serve(router, http.MethodGet, "/me", pair.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrCodeTokenRevoked, decodeError(t, rec).Code)
	})
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()

	router := gin.New()
	router.Use(OptionalJWTAuthMiddleware(jwtService, nil, nil))
	router.GET("/shop", func(c *gin.Context) {
		if id := GetJWTUserID(c); id != nil {
			c.String(http.StatusOK, id.String())
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	t.Run("anonymous passes", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/shop", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/shop", "broken")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token identifies the user", func(t *testing.T) {
		pair, input := newTestTokenPair(t, jwtService, false)
		rec := serve(router, http.MethodGet, "/shop", pair.AccessToken)
		assert.Equal(t, input.UserID.String(), rec.Body.String())
	})
}

func TestRequireStaff(t *testing.T) {
	jwtService := newTestJWTService()

	router := gin.New()
	router.Use(JWTAuthMiddleware(jwtService, nil, nil), RequireStaff())
	router.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	staff, _ := newTestTokenPair(t, jwtService, true)
	rec := serve(router, http.MethodGet, "/admin", staff.AccessToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	buyer, _ := newTestTokenPair(t, jwtService, false)
	rec = serve(router, http.MethodGet, "/admin", buyer.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, dto.ErrCodeForbidden, decodeError(t, rec).Code)
}

func TestRequireStaff_WithoutClaims(t *testing.T) {
	router := gin.New()
	router.Use(RequireStaff())
	router.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := serve(router, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
