package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

var _ repository.ThreadRepository = (*DB)(nil)

const msgThreadNotFound = "Thread tidak ditemukan"

func (db *DB) AddThread(ctx context.Context, thread *model.NewThread) (*model.AddedThread, error) {
	id := repository.PrefixedID(db.ids, "thread")

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO threads (id, title, body, date, owner) VALUES ($1, $2, $3, $4, $5)`,
		id, thread.Title, thread.Body, db.timestamp(), thread.Owner,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: inserting thread: %w", err)
	}

	return model.NewAddedThread(id, thread.Title, thread.Owner)
}

func (db *DB) VerifyThreadExist(ctx context.Context, threadID string) error {
	var found int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM threads WHERE id = $1`, threadID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound(msgThreadNotFound)
		}
		return fmt.Errorf("postgres: checking thread %s: %w", threadID, err)
	}
	return nil
}

// GetThreadByID returns the thread joined with its owner's username.
func (db *DB) GetThreadByID(ctx context.Context, threadID string) (*model.Thread, error) {
	var t model.Thread
	err := db.conn.QueryRowContext(ctx,
		`SELECT threads.id, threads.title, threads.body, threads.date, users.username
		 FROM threads
		 JOIN users ON users.id = threads.owner
		 WHERE threads.id = $1`,
		threadID,
	).Scan(&t.ID, &t.Title, &t.Body, &t.Date, &t.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgThreadNotFound)
		}
		return nil, fmt.Errorf("postgres: getting thread %s: %w", threadID, err)
	}
	return &t, nil
}
