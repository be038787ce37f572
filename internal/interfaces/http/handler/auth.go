package handler

import (
	appidentity "github.com/amunitsiia/shop/internal/application/identity"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/amunitsiia/shop/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService Auth
	cookies     CartCookies
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService Auth, cookies CartCookies) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// loginCart reads the cookie cart to merge; a malformed cookie never blocks sign-in
func (h *AuthHandler) loginCart(c *gin.Context) trade.Cart {
	cart, err := h.cookies.Cart(c)
	if err != nil {
		return trade.Cart{}
	}
	return cart
}

func (h *AuthHandler) applyCartHints(c *gin.Context, result *appidentity.AuthResult) {
	if result.RestoreCart {
		h.cookies.SetRestoreFlag(c)
	}
	if result.ClearCart {
		h.cookies.ClearCart(c)
	}
}

// Register signs up a shop user and moves the cookie cart to the server
// @Summary      Register a shop user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body appidentity.RegisterRequest true "Request body"
// @Success      201 {object} dto.Response{data=appidentity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.Register(c.Request.Context(), req, h.loginCart(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.applyCartHints(c, result)
	h.Created(c, result)
}

// Login signs in with a username or an email
// @Summary      Sign in with a username or an email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body appidentity.LoginRequest true "Request body"
// @Success      200 {object} dto.Response{data=appidentity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.Login(c.Request.Context(), req, h.loginCart(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.applyCartHints(c, result)
	h.Success(c, result)
}

// AdminLogin signs a staff user into the back office and drops any open order
// @Summary      Sign into the back office
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body appidentity.LoginRequest true "Request body"
// @Success      200 {object} dto.Response{data=appidentity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req appidentity.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.AdminLogin(c.Request.Context(), req, h.loginCart(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.applyCartHints(c, result)
	h.Success(c, result)
}

// Refresh rotates the token pair
// @Summary      Rotate the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body appidentity.RefreshRequest true "Request body"
// @Success      200 {object} dto.Response{data=appidentity.TokenResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req appidentity.RefreshRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Logout revokes the current access token
// @Summary      Revoke the current access token
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=dto.MessageResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Logged out"})
}

// ChangePassword replaces the password and signs out every session
// @Summary      Change the password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body appidentity.ChangePasswordRequest true "Request body"
// @Success      200 {object} dto.Response{data=dto.MessageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req appidentity.ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Password changed"})
}

// Me returns the signed-in user
// @Summary      Get the signed-in user
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=appidentity.UserInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	info, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}
