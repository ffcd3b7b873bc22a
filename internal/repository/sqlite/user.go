package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

const (
	msgUsernameTaken    = "username tidak tersedia"
	msgUsernameNotFound = "username tidak ditemukan"
	msgUserNotFound     = "user tidak ditemukan"
)

// AddUser inserts a registered user. user.Password must already be hashed.
//
// The UNIQUE constraint on username backs up VerifyAvailableUsername: if two
// registrations race, the loser gets the same invariant error.
func (db *DB) AddUser(ctx context.Context, user *model.RegisterUser) (*model.RegisteredUser, error) {
	id := repository.PrefixedID(db.ids, "user")

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, password, fullname) VALUES (?, ?, ?, ?)`,
		id, user.Username, user.Password, user.Fullname,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.InvariantField("username", msgUsernameTaken)
		}
		return nil, fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	return model.NewRegisteredUser(id, user.Username, user.Fullname)
}

func (db *DB) VerifyAvailableUsername(ctx context.Context, username string) error {
	var exists int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username = ?`, username,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sqlite: checking username %q: %w", username, err)
	}
	return apperror.InvariantField("username", msgUsernameTaken)
}

func (db *DB) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	var password string
	err := db.conn.QueryRowContext(ctx,
		`SELECT password FROM users WHERE username = ?`, username,
	).Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.InvariantField("username", msgUsernameNotFound)
		}
		return "", fmt.Errorf("sqlite: getting password for %q: %w", username, err)
	}
	return password, nil
}

func (db *DB) GetIDByUsername(ctx context.Context, username string) (string, error) {
	var id string
	err := db.conn.QueryRowContext(ctx,
		`SELECT id FROM users WHERE username = ?`, username,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.Invariant(msgUserNotFound)
		}
		return "", fmt.Errorf("sqlite: getting id for %q: %w", username, err)
	}
	return id, nil
}
