package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sakif/forum-api/internal/model"
)

// TESTING WITH IN-MEMORY SQLITE:
// ":memory:" gives every test a fresh, isolated database that disappears
// when the connection closes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:", WithIDGenerator(&seqIDs{}), WithClock(newTickingClock()))
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// seqIDs hands out "1", "2", ... so ids are predictable in assertions.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprint(s.n)
}

// newTickingClock returns a clock that advances one second per call, so rows
// inserted one after another always get strictly increasing dates.
func newTickingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func createTestUser(t *testing.T, db *DB, username string) string {
	t.Helper()
	u, err := db.AddUser(context.Background(), &model.RegisterUser{
		Username: username,
		Password: "hashed-" + username,
		Fullname: "Full " + username,
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u.ID
}

func createTestThread(t *testing.T, db *DB, owner string) string {
	t.Helper()
	th, err := db.AddThread(context.Background(), &model.NewThread{
		Title: "judul",
		Body:  "isi",
		Owner: owner,
	})
	if err != nil {
		t.Fatalf("failed to create test thread: %v", err)
	}
	return th.ID
}

func createTestComment(t *testing.T, db *DB, threadID, owner, content string) string {
	t.Helper()
	c, err := db.AddComment(context.Background(), &model.NewComment{
		ThreadID: threadID,
		Content:  content,
		Owner:    owner,
	})
	if err != nil {
		t.Fatalf("failed to create test comment: %v", err)
	}
	return c.ID
}

func createTestReply(t *testing.T, db *DB, commentID, owner, content string) string {
	t.Helper()
	r, err := db.AddReply(context.Background(), &model.NewReply{
		CommentID: commentID,
		Content:   content,
		Owner:     owner,
	})
	if err != nil {
		t.Fatalf("failed to create test reply: %v", err)
	}
	return r.ID
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate() error = %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestCascadeDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "dicoding")
	threadID := createTestThread(t, db, owner)
	commentID := createTestComment(t, db, threadID, owner, "komen")
	createTestReply(t, db, commentID, owner, "balas")
	if err := db.LikeComment(ctx, commentID, owner); err != nil {
		t.Fatalf("LikeComment() error = %v", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM threads WHERE id = ?`, threadID); err != nil {
		t.Fatalf("deleting thread: %v", err)
	}

	for _, table := range []string{"comments", "replies", "likes"} {
		var n int
		if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%s rows after thread delete = %d, want 0", table, n)
		}
	}
}
