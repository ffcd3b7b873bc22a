package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// AuthService handles login, logout and access token refresh.
//
//	AuthHandler (HTTP) → AuthService → UserRepository / AuthenticationRepository (DB)
//	                                 ↘ TokenIssuer (JWT), PasswordHasher (bcrypt)
//
// Refresh tokens are stateful: a token is only honoured while it is stored
// in the authentications table. Logout deletes it.
type AuthService struct {
	users     repository.UserRepository
	tokens    repository.AuthenticationRepository
	issuer    TokenIssuer
	passwords PasswordHasher
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserRepository,
	tokens repository.AuthenticationRepository,
	issuer TokenIssuer,
	passwords PasswordHasher,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		issuer:    issuer,
		passwords: passwords,
		logger:    logger,
	}
}

// Login checks the credentials and issues an access/refresh token pair.
//
//  1. An unknown username is an invariant error (400, "username tidak ditemukan").
//  2. A wrong password is an authentication error (401).
//  3. The refresh token is persisted before the pair is returned.
func (s *AuthService) Login(ctx context.Context, p model.Payload) (*model.NewAuth, error) {
	login, err := model.ParseUserLogin(p)
	if err != nil {
		return nil, err
	}

	hash, err := s.users.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}
	if err := s.passwords.ComparePassword(login.Password, hash); err != nil {
		return nil, err
	}

	id, err := s.users.GetIDByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}

	payload := model.TokenPayload{ID: id, Username: login.Username}
	access, err := s.issuer.CreateAccessToken(payload)
	if err != nil {
		return nil, fmt.Errorf("service/auth: creating access token: %w", err)
	}
	refresh, err := s.issuer.CreateRefreshToken(payload)
	if err != nil {
		return nil, fmt.Errorf("service/auth: creating refresh token: %w", err)
	}

	if err := s.tokens.AddToken(ctx, refresh); err != nil {
		return nil, fmt.Errorf("service/auth: storing refresh token: %w", err)
	}

	s.logger.Info("user logged in", slog.String("userID", id))
	return model.NewNewAuth(access, refresh)
}

// Logout removes a stored refresh token. A token that is not stored is an
// invariant error, so logging out twice fails the second time.
func (s *AuthService) Logout(ctx context.Context, p model.Payload) error {
	token, err := model.ParseRefreshToken(apperror.EntityDeleteAuthentication, p)
	if err != nil {
		return err
	}

	if err := s.tokens.CheckAvailabilityToken(ctx, token); err != nil {
		return err
	}
	if err := s.tokens.DeleteToken(ctx, token); err != nil {
		return fmt.Errorf("service/auth: deleting refresh token: %w", err)
	}
	return nil
}

// Refresh trades a valid, stored refresh token for a new access token. The
// refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, p model.Payload) (string, error) {
	token, err := model.ParseRefreshToken(apperror.EntityRefreshAuthentication, p)
	if err != nil {
		return "", err
	}

	if err := s.issuer.VerifyRefreshToken(token); err != nil {
		return "", err
	}
	if err := s.tokens.CheckAvailabilityToken(ctx, token); err != nil {
		return "", err
	}

	payload, err := s.issuer.DecodePayload(token)
	if err != nil {
		return "", fmt.Errorf("service/auth: decoding refresh token: %w", err)
	}

	access, err := s.issuer.CreateAccessToken(payload)
	if err != nil {
		return "", fmt.Errorf("service/auth: creating access token: %w", err)
	}
	return access, nil
}
