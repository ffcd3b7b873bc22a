package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// UserService registers new users.
type UserService struct {
	users     repository.UserRepository
	passwords PasswordHasher
	logger    *slog.Logger
}

func NewUserService(users repository.UserRepository, passwords PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// AddUser validates the registration payload, checks the username is free,
// hashes the password and stores the user.
//
// The plaintext password never reaches the repository.
func (s *UserService) AddUser(ctx context.Context, p model.Payload) (*model.RegisteredUser, error) {
	reg, err := model.ParseRegisterUser(p)
	if err != nil {
		return nil, err
	}

	if err := s.users.VerifyAvailableUsername(ctx, reg.Username); err != nil {
		return nil, err
	}

	hashed, err := s.passwords.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("service/user: hashing password: %w", err)
	}
	reg.Password = hashed

	user, err := s.users.AddUser(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("service/user: adding user %q: %w", reg.Username, err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}
