package identity

import (
	"context"
	"errors"

	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authentication errors
var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid login or password")
	ErrPasswordMismatch   = shared.NewDomainError("PASSWORD_MISMATCH", "Passwords do not match")
	ErrUsernameTaken      = shared.ErrAlreadyExists.WithMessage("A user with that username already exists")
	ErrStaffOnly          = shared.ErrForbidden.WithMessage("Back-office access requires a staff account")
	ErrTokenExpired       = shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	ErrTokenInvalid       = shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	ErrTokenMaxRefresh    = shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	ErrTokenRevoked       = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
)

// CartSync is the part of the cart service sign-in depends on
type CartSync interface {
	MergeCartOnLogin(ctx context.Context, customer apptrade.Customer, cart trade.Cart) (bool, error)
	ClearPendingOrder(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles sign-up, sign-in and token lifecycle
type AuthService struct {
	scope      TransactionScope
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	carts      CartSync
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	scope TransactionScope,
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	carts CartSync,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		scope:      scope,
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		carts:      carts,
		logger:     logger.Named("auth"),
	}
}

// Register creates a user with its buyer profile, signs it in and
// moves the cookie cart into a server-side order
func (s *AuthService) Register(ctx context.Context, req RegisterRequest, cart trade.Cart) (*AuthResult, error) {
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	user, err := identity.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user.RecordLogin()

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.UserRepo().Save(ctx, user); err != nil {
			return err
		}
		return repos.BuyerRepo().Save(ctx, partner.NewBuyerForUser(user.ID, user.Username, user.Email))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))
	return s.signIn(ctx, user, cart)
}

// Login authenticates a shop user
func (s *AuthService) Login(ctx context.Context, req LoginRequest, cart trade.Cart) (*AuthResult, error) {
	user, err := s.authenticate(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}
	s.recordLogin(ctx, user)
	return s.signIn(ctx, user, cart)
}

// AdminLogin authenticates a staff member for the back office. The staff
// member's open order is dropped and the client is told to clear its cookie cart.
func (s *AuthService) AdminLogin(ctx context.Context, req LoginRequest, cart trade.Cart) (*AuthResult, error) {
	user, err := s.authenticate(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}
	if !user.IsStaff {
		s.logger.Warn("Back-office login by non-staff user", zap.String("user_id", user.ID.String()))
		return nil, ErrStaffOnly
	}
	if err := s.carts.ClearPendingOrder(ctx, user.ID); err != nil {
		return nil, err
	}
	s.recordLogin(ctx, user)

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	result.ClearCart = !cart.IsEmpty()
	return result, nil
}

// Refresh rotates a token pair. The user is re-read so role and email
// changes apply to the new tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.blacklist.IsUserRevoked(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if !user.CanAuthenticate() {
		return nil, ErrTokenRevoked
	}

	pair, err := s.jwtService.RefreshTokenPair(claims, tokenInput(user))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}
	result := toTokenResult(pair)
	return &result, nil
}

// Logout revokes the access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}
	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// ChangePassword replaces the password and revokes every token issued before
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(req.OldPassword) {
		return ErrInvalidCredentials.WithMessage("Old password is incorrect")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	if err := s.blacklist.RevokeUser(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Error("Failed to revoke tokens after password change", zap.Error(err))
	}
	s.logger.Info("User password changed", zap.String("user_id", userID.String()))
	return nil
}

// Me returns the signed-in user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// authenticate resolves a username or email and checks the password
func (s *AuthService) authenticate(ctx context.Context, login, password string) (*identity.User, error) {
	candidates, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	user := identity.ResolveLogin(candidates, login)
	if user == nil || !user.CanAuthenticate() || !user.VerifyPassword(password) {
		s.logger.Warn("Failed login attempt", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) recordLogin(ctx context.Context, user *identity.User) {
	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}
}

// signIn issues tokens and syncs the cookie cart with the server-side order
func (s *AuthService) signIn(ctx context.Context, user *identity.User, cart trade.Cart) (*AuthResult, error) {
	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	customer := apptrade.Customer{UserID: user.ID, Username: user.Username, Email: user.Email}
	restore, err := s.carts.MergeCartOnLogin(ctx, customer, cart)
	if err != nil {
		s.logger.Error("Failed to merge cookie cart", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	result.RestoreCart = restore

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.Bool("restore_cart", restore))
	return result, nil
}

func (s *AuthService) issue(user *identity.User) (*AuthResult, error) {
	pair, err := s.jwtService.GenerateTokenPair(tokenInput(user))
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return &AuthResult{TokenResult: toTokenResult(pair), User: ToUserInfo(user)}, nil
}

func tokenInput(user *identity.User) auth.GenerateTokenInput {
	return auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}
}

func toTokenResult(pair *auth.TokenPair) TokenResult {
	return TokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return ErrTokenExpired
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return ErrTokenMaxRefresh
	default:
		return ErrTokenInvalid
	}
}
