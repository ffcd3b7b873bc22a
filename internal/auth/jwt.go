// Package auth provides JWT token management, password hashing and the
// bearer-token middleware for the forum API.
//
// AUTHENTICATION FLOW OVERVIEW:
//  1. POST /authentications with username + password
//  2. Server verifies the bcrypt hash, issues an access token and a refresh token,
//     and stores the refresh token in the authentications table
//  3. Protected routes read "Authorization: Bearer <access token>"
//  4. PUT /authentications trades a stored refresh token for a new access token
//  5. DELETE /authentications removes the refresh token (logout)
//
// TWO KEYS:
// Access and refresh tokens are signed with different HMAC secrets. A leaked
// access token can never be replayed as a refresh token, and vice versa.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
)

const (
	issuer = "forum-api"

	// DefaultAccessTokenAge is how long an access token stays valid.
	DefaultAccessTokenAge = 3000 * time.Second

	msgInvalidRefreshToken = "refresh token tidak valid"
)

// ErrInvalidToken is returned for any access token that fails verification.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenManager creates and verifies access and refresh tokens.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessAge     time.Duration
	now           func() time.Time
}

// NewTokenManager creates a TokenManager. Both secrets must be at least 16
// characters; generate them with `openssl rand -hex 32`.
func NewTokenManager(accessSecret, refreshSecret string, accessAge time.Duration) (*TokenManager, error) {
	if len(accessSecret) < 16 {
		return nil, errors.New("auth: access token key must be at least 16 characters")
	}
	if len(refreshSecret) < 16 {
		return nil, errors.New("auth: refresh token key must be at least 16 characters")
	}
	if accessAge <= 0 {
		accessAge = DefaultAccessTokenAge
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessAge:     accessAge,
		now:           time.Now,
	}, nil
}

// claims is the JWT payload: the user's id (also the "sub" claim) and username.
type claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a short-lived token for p.
func (m *TokenManager) CreateAccessToken(p model.TokenPayload) (string, error) {
	exp := m.now().Add(m.accessAge)
	return m.sign(p, m.accessSecret, &exp)
}

// CreateRefreshToken signs a refresh token for p. Refresh tokens carry no
// expiry; they stay valid until logout removes them from storage.
func (m *TokenManager) CreateRefreshToken(p model.TokenPayload) (string, error) {
	return m.sign(p, m.refreshSecret, nil)
}

func (m *TokenManager) sign(p model.TokenPayload, secret []byte, exp *time.Time) (string, error) {
	c := claims{
		UserID:   p.ID,
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  p.ID,
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(m.now()),
			// jti keeps two tokens minted in the same second distinct.
			ID: fmt.Sprintf("%d", m.now().UnixNano()),
		},
	}
	if exp != nil {
		c.ExpiresAt = jwt.NewNumericDate(*exp)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// VerifyRefreshToken checks the refresh token's signature and format. It fails
// with an invariant error, as the client sent an unusable token.
func (m *TokenManager) VerifyRefreshToken(token string) error {
	if _, err := m.parse(token, m.refreshSecret); err != nil {
		return apperror.Invariant(msgInvalidRefreshToken)
	}
	return nil
}

// VerifyAccessToken parses an access token and returns its payload.
func (m *TokenManager) VerifyAccessToken(token string) (model.TokenPayload, error) {
	c, err := m.parse(token, m.accessSecret, jwt.WithExpirationRequired())
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return model.TokenPayload{ID: c.UserID, Username: c.Username}, nil
}

// DecodePayload returns the claims embedded in token without verifying the
// signature. Callers verify first (VerifyRefreshToken).
func (m *TokenManager) DecodePayload(token string) (model.TokenPayload, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return model.TokenPayload{}, fmt.Errorf("auth: decoding token payload: %w", err)
	}
	return model.TokenPayload{ID: c.UserID, Username: c.Username}, nil
}

// parse verifies signature, algorithm and issuer. Passing jwt.WithValidMethods
// blocks the "alg: none" and algorithm-confusion attacks.
func (m *TokenManager) parse(tokenStr string, secret []byte, opts ...jwt.ParserOption) (*claims, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("auth: token expired")
		}
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("auth: invalid token claims")
	}
	if c.UserID == "" {
		return nil, fmt.Errorf("auth: token has no user id")
	}
	return c, nil
}
