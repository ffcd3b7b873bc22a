package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/forum-api/internal/repository"
)

var (
	_ repository.LikeRepository = (*DB)(nil)
	_ repository.LikeToggler    = (*DB)(nil)
)

func (db *DB) CheckIfUserHasLikedComment(ctx context.Context, commentID, userID string) (bool, error) {
	var found int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM likes WHERE comment_id = ? AND owner = ?`, commentID, userID,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: checking like on %s: %w", commentID, err)
	}
	return true, nil
}

// LikeComment is a no-op when the like already exists.
func (db *DB) LikeComment(ctx context.Context, commentID, userID string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (id, date, comment_id, owner) VALUES (?, ?, ?, ?)
		 ON CONFLICT (comment_id, owner) DO NOTHING`,
		repository.PrefixedID(db.ids, "like"), db.timestamp(), commentID, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: liking comment %s: %w", commentID, err)
	}
	return nil
}

func (db *DB) UnlikeComment(ctx context.Context, commentID, userID string) error {
	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM likes WHERE comment_id = ? AND owner = ?`, commentID, userID,
	); err != nil {
		return fmt.Errorf("sqlite: unliking comment %s: %w", commentID, err)
	}
	return nil
}

// ToggleLike flips the like inside one transaction: delete the row if it
// exists, otherwise insert it.
func (db *DB) ToggleLike(ctx context.Context, commentID, userID string) (bool, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("sqlite: starting like toggle: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE comment_id = ? AND owner = ?`, commentID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("sqlite: toggling like on %s: %w", commentID, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlite: toggling like on %s: %w", commentID, err)
	}

	liked := removed == 0
	if liked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO likes (id, date, comment_id, owner) VALUES (?, ?, ?, ?)
			 ON CONFLICT (comment_id, owner) DO NOTHING`,
			repository.PrefixedID(db.ids, "like"), db.timestamp(), commentID, userID,
		); err != nil {
			return false, fmt.Errorf("sqlite: toggling like on %s: %w", commentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("sqlite: committing like toggle: %w", err)
	}
	return liked, nil
}

func (db *DB) CountCommentLikes(ctx context.Context, commentID string) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE comment_id = ?`, commentID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: counting likes of %s: %w", commentID, err)
	}
	return n, nil
}

func (db *DB) GetUserLikeHistory(ctx context.Context, userID string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT comment_id FROM likes WHERE owner = ? ORDER BY date DESC, rowid DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing likes of %s: %w", userID, err)
	}
	defer rows.Close()

	history := []string{}
	for rows.Next() {
		var commentID string
		if err := rows.Scan(&commentID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning like row: %w", err)
		}
		history = append(history, commentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating like rows: %w", err)
	}
	return history, nil
}
