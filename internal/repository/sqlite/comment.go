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

var _ repository.CommentRepository = (*DB)(nil)

const (
	msgCommentNotFound  = "Comment tidak ditemukan"
	msgCommentForbidden = "Anda tidak berhak menghapus comment ini"
)

func (db *DB) AddComment(ctx context.Context, comment *model.NewComment) (*model.AddedComment, error) {
	id := repository.PrefixedID(db.ids, "comment")

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (id, content, date, is_deleted, thread_id, owner)
		 VALUES (?, ?, ?, FALSE, ?, ?)`,
		id, comment.Content, db.timestamp(), comment.ThreadID, comment.Owner,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: inserting comment: %w", err)
	}

	return model.NewAddedComment(id, comment.Content, comment.Owner)
}

func (db *DB) VerifyCommentExist(ctx context.Context, commentID string) error {
	var found int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM comments WHERE id = ?`, commentID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound(msgCommentNotFound)
		}
		return fmt.Errorf("sqlite: checking comment %s: %w", commentID, err)
	}
	return nil
}

func (db *DB) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	var owner string
	err := db.conn.QueryRowContext(ctx,
		`SELECT owner FROM comments WHERE id = ?`, commentID,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound(msgCommentNotFound)
		}
		return fmt.Errorf("sqlite: getting owner of comment %s: %w", commentID, err)
	}
	if owner != userID {
		return apperror.Authorization(msgCommentForbidden)
	}
	return nil
}

// DeleteCommentByID flags the comment as deleted. Content stays in the row and
// is masked when the thread is read.
func (db *DB) DeleteCommentByID(ctx context.Context, commentID string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE comments SET is_deleted = TRUE WHERE id = ?`, commentID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %s: %w", commentID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFound(msgCommentNotFound)
	}
	return nil
}

func (db *DB) GetCommentsByThreadID(ctx context.Context, threadID string) ([]model.Comment, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT comments.id, users.username, comments.date, comments.content, comments.is_deleted
		 FROM comments
		 JOIN users ON users.id = comments.owner
		 WHERE comments.thread_id = ?
		 ORDER BY comments.date ASC, comments.rowid ASC`,
		threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments of thread %s: %w", threadID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comment rows: %w", err)
	}
	return comments, nil
}
