package handler

import (
	"net/http"
	"testing"

	appidentity "github.com/amunitsiia/shop/internal/application/identity"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(svc *MockAuth, user *uuid.UUID) *gin.Engine {
	h := NewAuthHandler(svc, testCookies())
	engine := gin.New()
	g := engine.Group("/auth")
	if user != nil {
		g.Use(asUser(*user, false))
	}
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/admin/login", h.AdminLogin)
	g.POST("/refresh", h.Refresh)
	g.POST("/logout", h.Logout)
	g.PUT("/password", h.ChangePassword)
	g.GET("/me", h.Me)
	return engine
}

func testAuthResult() *appidentity.AuthResult {
	return &appidentity.AuthResult{
		TokenResult: appidentity.TokenResult{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"},
		User:        appidentity.UserInfo{ID: uuid.New(), Username: "buyer"},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	req := appidentity.LoginRequest{Login: "buyer@example.com", Password: "secret123"}

	t.Run("merges the cookie cart and asks for a restore", func(t *testing.T) {
		svc := new(MockAuth)
		cart := trade.Cart{uuid.NewString(): {Quantity: 1}}
		result := testAuthResult()
		result.RestoreCart = true
		svc.On("Login", mock.Anything, req, cart).Return(result, nil)

		w := serve(t, newAuthEngine(svc, nil), testRequest{
			method:  http.MethodPost,
			path:    "/auth/login",
			body:    req,
			cookies: map[string]string{"cart": cart.Encode()},
		})

		require.Equal(t, http.StatusOK, w.Code)
		flag := responseCookie(w, "flag")
		require.NotNil(t, flag)
		assert.Equal(t, "true", flag.Value)
		assert.Equal(t, 1, flag.MaxAge)
		svc.AssertExpectations(t)
	})

	t.Run("malformed cookie cart does not block sign-in", func(t *testing.T) {
		svc := new(MockAuth)
		svc.On("Login", mock.Anything, req, trade.Cart{}).Return(testAuthResult(), nil)

		w := serve(t, newAuthEngine(svc, nil), testRequest{
			method:  http.MethodPost,
			path:    "/auth/login",
			body:    req,
			cookies: map[string]string{"cart": "garbage"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, responseCookie(w, "flag"))
		svc.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := new(MockAuth)
		svc.On("Login", mock.Anything, req, trade.Cart{}).
			Return(nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid login or password"))

		w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/login", body: req})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "ERR_INVALID_CREDENTIALS", decodeResponse(t, w).Error.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(MockAuth)
		w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/login", body: map[string]any{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Login")
	})
}

func TestAuthHandler_AdminLogin_ClearsCart(t *testing.T) {
	svc := new(MockAuth)
	req := appidentity.LoginRequest{Login: "admin", Password: "secret123"}
	result := testAuthResult()
	result.ClearCart = true
	svc.On("AdminLogin", mock.Anything, req, trade.Cart{}).Return(result, nil)

	w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/admin/login", body: req})

	require.Equal(t, http.StatusOK, w.Code)
	cookie := responseCookie(w, "cart")
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_AdminLogin_NonStaff(t *testing.T) {
	svc := new(MockAuth)
	req := appidentity.LoginRequest{Login: "buyer", Password: "secret123"}
	svc.On("AdminLogin", mock.Anything, req, trade.Cart{}).Return(nil, shared.ErrForbidden)

	w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/admin/login", body: req})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(MockAuth)
	req := appidentity.RegisterRequest{
		Username:        "newbuyer",
		Email:           "new@example.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	}
	svc.On("Register", mock.Anything, req, trade.Cart{}).Return(testAuthResult(), nil)

	w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/register", body: req})

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := new(MockAuth)
	svc.On("Refresh", mock.Anything, "refresh-token").
		Return(&appidentity.TokenResult{AccessToken: "new"}, nil)

	w := serve(t, newAuthEngine(svc, nil), testRequest{
		method: http.MethodPost,
		path:   "/auth/refresh",
		body:   appidentity.RefreshRequest{RefreshToken: "refresh-token"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("without claims", func(t *testing.T) {
		svc := new(MockAuth)
		w := serve(t, newAuthEngine(svc, nil), testRequest{method: http.MethodPost, path: "/auth/logout"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revokes the token", func(t *testing.T) {
		userID := uuid.New()
		svc := new(MockAuth)
		svc.On("Logout", mock.Anything, mock.MatchedBy(func(c *auth.Claims) bool {
			return c.UserID == userID.String()
		})).Return(nil)

		w := serve(t, newAuthEngine(svc, &userID), testRequest{method: http.MethodPost, path: "/auth/logout"})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	userID := uuid.New()
	req := appidentity.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "new-secret"}

	svc := new(MockAuth)
	svc.On("ChangePassword", mock.Anything, userID, req).
		Return(shared.NewDomainError("PASSWORD_MISMATCH", "Old password is incorrect"))

	w := serve(t, newAuthEngine(svc, &userID), testRequest{method: http.MethodPut, path: "/auth/password", body: req})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_PASSWORD_MISMATCH", decodeResponse(t, w).Error.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()
	svc := new(MockAuth)
	svc.On("Me", mock.Anything, userID).Return(&appidentity.UserInfo{ID: userID, Username: "buyer"}, nil)

	w := serve(t, newAuthEngine(svc, &userID), testRequest{method: http.MethodGet, path: "/auth/me"})

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "buyer", data["username"])
}

func TestAccountHandler(t *testing.T) {
	userID := uuid.New()
	newEngine := func(svc *MockAccounts, user *uuid.UUID) *gin.Engine {
		h := NewAccountHandler(svc)
		engine := gin.New()
		g := engine.Group("/account")
		if user != nil {
			g.Use(asUser(*user, false))
		}
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		return engine
	}

	t.Run("get own account", func(t *testing.T) {
		svc := new(MockAccounts)
		svc.On("GetAccount", mock.Anything, userID, userID).
			Return(&appidentity.AccountResponse{User: appidentity.UserInfo{ID: userID}}, nil)

		w := serve(t, newEngine(svc, &userID), testRequest{method: http.MethodGet, path: "/account/" + userID.String()})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("someone else's account", func(t *testing.T) {
		other := uuid.New()
		svc := new(MockAccounts)
		svc.On("GetAccount", mock.Anything, userID, other).Return(nil, shared.ErrForbidden)

		w := serve(t, newEngine(svc, &userID), testRequest{method: http.MethodGet, path: "/account/" + other.String()})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("update contacts", func(t *testing.T) {
		form := apptrade.ContactForm{Name: "Олена", Email: "olena@example.com", Tel: "0671234567", Address: "Львів"}
		svc := new(MockAccounts)
		svc.On("UpdateAccount", mock.Anything, userID, userID, form).
			Return(&appidentity.AccountResponse{Form: form}, nil)

		w := serve(t, newEngine(svc, &userID), testRequest{
			method: http.MethodPut,
			path:   "/account/" + userID.String(),
			body:   form,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := new(MockAccounts)
		w := serve(t, newEngine(svc, nil), testRequest{method: http.MethodGet, path: "/account/" + userID.String()})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
