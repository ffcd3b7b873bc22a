package postgres

import (
	"context"
	"fmt"

	"github.com/sakif/forum-api/internal/repository"
)

var (
	_ repository.LikeRepository = (*DB)(nil)
	_ repository.LikeToggler    = (*DB)(nil)
)

func (db *DB) CheckIfUserHasLikedComment(ctx context.Context, commentID, userID string) (bool, error) {
	var liked bool
	if err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE comment_id = $1 AND owner = $2)`, commentID, userID,
	).Scan(&liked); err != nil {
		return false, fmt.Errorf("postgres: checking like on %s: %w", commentID, err)
	}
	return liked, nil
}

// LikeComment is a no-op when the like already exists.
func (db *DB) LikeComment(ctx context.Context, commentID, userID string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (id, date, comment_id, owner) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (comment_id, owner) DO NOTHING`,
		repository.PrefixedID(db.ids, "like"), db.timestamp(), commentID, userID,
	)
	if err != nil {
		return fmt.Errorf("postgres: liking comment %s: %w", commentID, err)
	}
	return nil
}

func (db *DB) UnlikeComment(ctx context.Context, commentID, userID string) error {
	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM likes WHERE comment_id = $1 AND owner = $2`, commentID, userID,
	); err != nil {
		return fmt.Errorf("postgres: unliking comment %s: %w", commentID, err)
	}
	return nil
}

// ToggleLike flips the like inside one transaction: delete the row if it
// exists, otherwise insert it.
//
// Under READ COMMITTED two concurrent toggles could both see no row and both
// try to insert. A transaction-scoped advisory lock on (comment, user)
// serializes them, so N toggles always end at N mod 2 likes.
func (db *DB) ToggleLike(ctx context.Context, commentID, userID string) (bool, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("postgres: starting like toggle: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`, commentID, userID,
	); err != nil {
		return false, fmt.Errorf("postgres: locking like on %s: %w", commentID, err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE comment_id = $1 AND owner = $2`, commentID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("postgres: toggling like on %s: %w", commentID, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("postgres: toggling like on %s: %w", commentID, err)
	}

	liked := removed == 0
	if liked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO likes (id, date, comment_id, owner) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (comment_id, owner) DO NOTHING`,
			repository.PrefixedID(db.ids, "like"), db.timestamp(), commentID, userID,
		); err != nil {
			return false, fmt.Errorf("postgres: toggling like on %s: %w", commentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("postgres: committing like toggle: %w", err)
	}
	return liked, nil
}

func (db *DB) CountCommentLikes(ctx context.Context, commentID string) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE comment_id = $1`, commentID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: counting likes of %s: %w", commentID, err)
	}
	return n, nil
}

// GetUserLikeHistory orders by date, then by id: xids sort by creation time,
// so the tiebreak keeps insertion order within one timestamp.
func (db *DB) GetUserLikeHistory(ctx context.Context, userID string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT comment_id FROM likes WHERE owner = $1 ORDER BY date DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: listing likes of %s: %w", userID, err)
	}
	defer rows.Close()

	history := []string{}
	for rows.Next() {
		var commentID string
		if err := rows.Scan(&commentID); err != nil {
			return nil, fmt.Errorf("postgres: scanning like row: %w", err)
		}
		history = append(history, commentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterating like rows: %w", err)
	}
	return history, nil
}
