package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/repository"
)

var _ repository.AuthenticationRepository = (*DB)(nil)

const msgRefreshTokenNotFound = "refresh token tidak ditemukan di database"

// AddToken stores a refresh token verbatim. A user may hold several at once.
func (db *DB) AddToken(ctx context.Context, token string) error {
	if _, err := db.conn.ExecContext(ctx,
		`INSERT INTO authentications (token) VALUES ($1)`, token,
	); err != nil {
		return fmt.Errorf("postgres: inserting token: %w", err)
	}
	return nil
}

func (db *DB) CheckAvailabilityToken(ctx context.Context, token string) error {
	var found int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM authentications WHERE token = $1 LIMIT 1`, token,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.Invariant(msgRefreshTokenNotFound)
		}
		return fmt.Errorf("postgres: checking token: %w", err)
	}
	return nil
}

func (db *DB) DeleteToken(ctx context.Context, token string) error {
	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM authentications WHERE token = $1`, token,
	); err != nil {
		return fmt.Errorf("postgres: deleting token: %w", err)
	}
	return nil
}
