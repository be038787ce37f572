package auth

import (
	"errors"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType tells access tokens from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken       = errors.New("auth: malformed or unsigned token")
	ErrExpiredToken       = errors.New("auth: token expired")
	ErrInvalidTokenType   = errors.New("auth: unexpected token type")
	ErrInvalidClaims      = errors.New("auth: claims do not match")
	ErrTokenNotYetValid   = errors.New("auth: token used before nbf")
	ErrMissingUserID      = errors.New("auth: token has no user")
	ErrMaxRefreshExceeded = errors.New("auth: refresh limit reached, sign in again")
	ErrTokenBlacklisted   = errors.New("auth: token revoked")
)

// Claims is the payload of shop tokens. Refresh tokens only carry the
// user id and the rotation counter.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	IsStaff      bool      `json:"is_staff,omitempty"`
	TokenType    TokenType `json:"token_type"`
	RefreshCount int       `json:"refresh_count,omitempty"`
}

// TokenPair is what sign-in and refresh hand back to the client
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// GenerateTokenInput identifies the user a token pair is issued to
type GenerateTokenInput struct {
	UserID   uuid.UUID
	Username string
	Email    string
	IsStaff  bool
}

type signingKey struct {
	secret []byte
	ttl    time.Duration
}

// JWTService signs and verifies HS256 tokens, one key per token type
type JWTService struct {
	keys            map[TokenType]signingKey
	issuer          string
	maxRefreshCount int
}

// NewJWTService creates a JWT service. The access secret doubles as the
// refresh secret when none is configured.
func NewJWTService(cfg config.JWTConfig) *JWTService {
	refresh := cfg.RefreshSecret
	if refresh == "" {
		refresh = cfg.Secret
	}
	return &JWTService{
		keys: map[TokenType]signingKey{
			TokenTypeAccess:  {secret: []byte(cfg.Secret), ttl: cfg.AccessTokenExpiration},
			TokenTypeRefresh: {secret: []byte(refresh), ttl: cfg.RefreshTokenExpiration},
		},
		issuer:          cfg.Issuer,
		maxRefreshCount: cfg.MaxRefreshCount,
	}
}

// GenerateTokenPair issues a fresh access and refresh token
func (s *JWTService) GenerateTokenPair(input GenerateTokenInput) (*TokenPair, error) {
	return s.pair(input, 0)
}

// RefreshTokenPair rotates the pair described by validated refresh claims.
// input carries the user's current data so role or email changes apply.
func (s *JWTService) RefreshTokenPair(claims *Claims, input GenerateTokenInput) (*TokenPair, error) {
	switch {
	case claims.RefreshCount >= s.maxRefreshCount:
		return nil, ErrMaxRefreshExceeded
	case claims.UserID != input.UserID.String():
		return nil, ErrInvalidClaims
	}
	return s.pair(input, claims.RefreshCount+1)
}

func (s *JWTService) pair(input GenerateTokenInput, rotation int) (*TokenPair, error) {
	now := time.Now()
	uid := input.UserID.String()

	access := &Claims{
		UserID:    uid,
		Username:  input.Username,
		Email:     input.Email,
		IsStaff:   input.IsStaff,
		TokenType: TokenTypeAccess,
	}
	refresh := &Claims{
		UserID:       uid,
		TokenType:    TokenTypeRefresh,
		RefreshCount: rotation,
	}

	pair := &TokenPair{TokenType: "Bearer"}
	var err error
	if pair.AccessToken, pair.AccessTokenExpiresAt, err = s.stamp(access, now); err != nil {
		return nil, err
	}
	if pair.RefreshToken, pair.RefreshTokenExpiresAt, err = s.stamp(refresh, now); err != nil {
		return nil, err
	}
	return pair, nil
}

// stamp fills the registered claims for the token's type and signs it
func (s *JWTService) stamp(claims *Claims, now time.Time) (string, time.Time, error) {
	expires := now.Add(s.keys[claims.TokenType].ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   claims.UserID,
		Audience:  jwt.ClaimStrings{s.issuer},
		ExpiresAt: jwt.NewNumericDate(expires),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := s.sign(claims)
	return signed, expires, err
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.keys[claims.TokenType].secret)
}

// ValidateAccessToken verifies an access token and returns its claims
func (s *JWTService) ValidateAccessToken(token string) (*Claims, error) {
	return s.verify(token, TokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token and returns its claims
func (s *JWTService) ValidateRefreshToken(token string) (*Claims, error) {
	return s.verify(token, TokenTypeRefresh)
}

func (s *JWTService) verify(raw string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.keys[want].secret, nil
	}, jwt.WithIssuer(s.issuer))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return nil, ErrTokenNotYetValid
	case err != nil:
		return nil, ErrInvalidToken
	case !token.Valid:
		return nil, ErrInvalidClaims
	case claims.TokenType != want:
		return nil, ErrInvalidTokenType
	case claims.UserID == "":
		return nil, ErrMissingUserID
	}
	return claims, nil
}

// GetUserUUID parses the user id claim
func (c *Claims) GetUserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// GetIssuedAtTime returns iat, zero when absent
func (c *Claims) GetIssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// GetRemainingTTL is the time left before expiry, never negative
func (c *Claims) GetRemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return max(time.Until(c.ExpiresAt.Time), 0)
}

// GetAccessTokenExpiration returns the access token lifetime
func (s *JWTService) GetAccessTokenExpiration() time.Duration {
	return s.keys[TokenTypeAccess].ttl
}

// GetRefreshTokenExpiration returns the refresh token lifetime
func (s *JWTService) GetRefreshTokenExpiration() time.Duration {
	return s.keys[TokenTypeRefresh].ttl
}
