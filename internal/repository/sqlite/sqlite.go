// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database: it lives inside the Go binary as a single file.
// The forum runs on it by default; no separate database server is needed for
// development, tests (":memory:") or small single-node deployments. The postgres
// package implements the same contracts for larger installations.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C toolchain and makes cross-compilation
// painful. modernc.org/sqlite is a pure Go translation of SQLite.
//
// One *DB value implements every repository (users, authentications, threads,
// comments, replies, likes). The services only ever see the interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sakif/forum-api/internal/repository"
)

// DB wraps a sql.DB connection pool and provides repository methods.
type DB struct {
	conn *sql.DB
	ids  repository.IDGenerator
	now  func() time.Time
}

// Option customises a DB at construction time.
type Option func(*DB)

// WithIDGenerator replaces the default xid generator, mostly for tests that
// want predictable ids.
func WithIDGenerator(gen repository.IDGenerator) Option {
	return func(db *DB) { db.ids = gen }
}

// WithClock replaces time.Now for the dates stored on new rows.
func WithClock(now func() time.Time) Option {
	return func(db *DB) { db.now = now }
}

// New creates a new SQLite database connection and runs migrations.
//
// dbPath examples:
//   - "data/forum.db"  → file-based database (persistent)
//   - ":memory:"       → in-memory database (tests; lost on close)
//
// sql.Open does not connect; Ping forces the first connection so a bad path
// surfaces here instead of on the first request.
func New(dbPath string, opts ...Option) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database exists per connection. Pinning the pool to one
	// connection keeps every query on the same database.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers proceed while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{
		conn: conn,
		ids:  repository.XIDGenerator{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(db)
	}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// dsn appends the per-connection pragmas. Foreign keys are OFF by default in
// SQLite and the setting does not survive across pooled connections, so it
// goes in the DSN where the driver applies it to every new connection. The
// cascade deletes (user → thread → comment → reply/like) depend on it.
func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping reports whether the database is reachable. Used by the health endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// migrate creates the schema. CREATE ... IF NOT EXISTS keeps it idempotent,
// so it runs on every start.
func (db *DB) migrate() error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id       TEXT PRIMARY KEY,
				username TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				fullname TEXT NOT NULL
			);`},
		{"authentications", `
			CREATE TABLE IF NOT EXISTS authentications (
				token TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_authentications_token ON authentications(token);`},
		{"threads", `
			CREATE TABLE IF NOT EXISTS threads (
				id    TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				body  TEXT NOT NULL,
				date  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
			);`},
		{"comments", `
			CREATE TABLE IF NOT EXISTS comments (
				id         TEXT PRIMARY KEY,
				content    TEXT NOT NULL,
				date       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
				thread_id  TEXT NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
				owner      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
			);
			CREATE INDEX IF NOT EXISTS idx_comments_thread_id ON comments(thread_id, date);`},
		{"replies", `
			CREATE TABLE IF NOT EXISTS replies (
				id         TEXT PRIMARY KEY,
				content    TEXT NOT NULL,
				date       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
				comment_id TEXT NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
				owner      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
			);
			CREATE INDEX IF NOT EXISTS idx_replies_comment_id ON replies(comment_id, date);`},
		// One like per (comment, owner). The toggle relies on it.
		{"likes", `
			CREATE TABLE IF NOT EXISTS likes (
				id         TEXT PRIMARY KEY,
				date       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				comment_id TEXT NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
				owner      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				UNIQUE (comment_id, owner)
			);
			CREATE INDEX IF NOT EXISTS idx_likes_owner ON likes(owner, date);`},
	}

	for _, s := range stmts {
		if _, err := db.conn.Exec(s.sql); err != nil {
			return fmt.Errorf("creating %s table: %w", s.name, err)
		}
	}
	return nil
}

// timestamp returns the current time in UTC. Stored dates are compared as
// text by ORDER BY, so they must share one offset.
func (db *DB) timestamp() time.Time {
	return db.now().UTC()
}

func isUniqueViolation(err error) bool {
	var se *sqlitedriver.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
