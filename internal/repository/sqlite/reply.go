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

var _ repository.ReplyRepository = (*DB)(nil)

const (
	msgReplyNotFound  = "Reply tidak ditemukan"
	msgReplyForbidden = "Anda tidak berhak menghapus reply ini"
)

func (db *DB) AddReply(ctx context.Context, reply *model.NewReply) (*model.AddedReply, error) {
	id := repository.PrefixedID(db.ids, "reply")

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO replies (id, content, date, is_deleted, comment_id, owner)
		 VALUES (?, ?, ?, FALSE, ?, ?)`,
		id, reply.Content, db.timestamp(), reply.CommentID, reply.Owner,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: inserting reply: %w", err)
	}

	return model.NewAddedReply(id, reply.Content, reply.Owner)
}

func (db *DB) VerifyReplyExist(ctx context.Context, replyID string) error {
	var found int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM replies WHERE id = ?`, replyID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound(msgReplyNotFound)
		}
		return fmt.Errorf("sqlite: checking reply %s: %w", replyID, err)
	}
	return nil
}

func (db *DB) VerifyReplyOwner(ctx context.Context, replyID, userID string) error {
	var owner string
	err := db.conn.QueryRowContext(ctx,
		`SELECT owner FROM replies WHERE id = ?`, replyID,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound(msgReplyNotFound)
		}
		return fmt.Errorf("sqlite: getting owner of reply %s: %w", replyID, err)
	}
	if owner != userID {
		return apperror.Authorization(msgReplyForbidden)
	}
	return nil
}

func (db *DB) DeleteReplyByID(ctx context.Context, replyID string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE replies SET is_deleted = TRUE WHERE id = ?`, replyID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting reply %s: %w", replyID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFound(msgReplyNotFound)
	}
	return nil
}

func (db *DB) GetRepliesByCommentID(ctx context.Context, commentID string) ([]model.Reply, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT replies.id, replies.content, replies.date, users.username, replies.is_deleted
		 FROM replies
		 JOIN users ON users.id = replies.owner
		 WHERE replies.comment_id = ?
		 ORDER BY replies.date ASC, replies.rowid ASC`,
		commentID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing replies of comment %s: %w", commentID, err)
	}
	defer rows.Close()

	replies := []model.Reply{}
	for rows.Next() {
		var r model.Reply
		if err := rows.Scan(&r.ID, &r.Content, &r.Date, &r.Username, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("sqlite: scanning reply row: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating reply rows: %w", err)
	}
	return replies, nil
}
