package identity

import (
	"time"

	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterRequest signs up a new shop user
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest signs in with a username or an email
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest rotates a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest replaces the password of the signed-in user
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserInfo describes the signed-in user
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	IsStaff     bool       `json:"is_staff"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TokenResult carries an issued token pair
type TokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthResult is returned by sign-up and sign-in.
// RestoreCart asks the client to rebuild its cookie cart from the server
// order; ClearCart asks it to drop the cookie cart.
type AuthResult struct {
	TokenResult
	User        UserInfo `json:"user"`
	RestoreCart bool     `json:"restore_cart"`
	ClearCart   bool     `json:"clear_cart,omitempty"`
}

// AccountResponse is the account page of a user
type AccountResponse struct {
	User   UserInfo                     `json:"user"`
	Form   apptrade.ContactForm         `json:"form"`
	Orders []apptrade.OrderHistoryEntry `json:"orders"`
}

// ToUserInfo converts a domain user to the public user info
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsStaff:     u.IsStaff,
		LastLoginAt: u.LastLoginAt,
	}
}
