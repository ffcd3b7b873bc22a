package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/forum-api/internal/apperror"
)

// =========================================================================
// AUTHENTICATION TOKEN TESTS
// =========================================================================

func TestTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.CheckAvailabilityToken(ctx, "refresh"); !errors.Is(err, apperror.ErrInvariant) {
		t.Fatalf("CheckAvailabilityToken(before add) error = %v, want ErrInvariant", err)
	}

	if err := db.AddToken(ctx, "refresh"); err != nil {
		t.Fatalf("AddToken() error = %v", err)
	}
	// A second session for the same user may hold another token.
	if err := db.AddToken(ctx, "refresh-2"); err != nil {
		t.Fatalf("AddToken(second) error = %v", err)
	}
	if err := db.CheckAvailabilityToken(ctx, "refresh"); err != nil {
		t.Fatalf("CheckAvailabilityToken() error = %v", err)
	}

	if err := db.DeleteToken(ctx, "refresh"); err != nil {
		t.Fatalf("DeleteToken() error = %v", err)
	}
	if err := db.CheckAvailabilityToken(ctx, "refresh"); !errors.Is(err, apperror.ErrInvariant) {
		t.Errorf("CheckAvailabilityToken(after delete) error = %v, want ErrInvariant", err)
	}
	if err := db.CheckAvailabilityToken(ctx, "refresh-2"); err != nil {
		t.Errorf("other token should survive, got %v", err)
	}
}

// =========================================================================
// THREAD TESTS
// =========================================================================

func TestAddThread(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "dicoding")

	threadID := createTestThread(t, db, owner)
	if threadID != "thread-2" {
		t.Errorf("thread ID = %q, want %q", threadID, "thread-2")
	}
}

func TestVerifyThreadExist(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "dicoding")
	threadID := createTestThread(t, db, owner)

	if err := db.VerifyThreadExist(context.Background(), threadID); err != nil {
		t.Errorf("VerifyThreadExist() error = %v", err)
	}

	err := db.VerifyThreadExist(context.Background(), "thread-nope")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("VerifyThreadExist(missing) error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Thread tidak ditemukan" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestGetThreadByID(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "dicoding")
	threadID := createTestThread(t, db, owner)

	thread, err := db.GetThreadByID(context.Background(), threadID)
	if err != nil {
		t.Fatalf("GetThreadByID() error = %v", err)
	}

	if thread.ID != threadID || thread.Title != "judul" || thread.Body != "isi" {
		t.Errorf("thread = %+v", thread)
	}
	if thread.Username != "dicoding" {
		t.Errorf("Username = %q, want %q", thread.Username, "dicoding")
	}
	if thread.Date.IsZero() {
		t.Error("Date should be set")
	}
}

func TestGetThreadByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetThreadByID(context.Background(), "thread-nope")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetThreadByID() error = %v, want ErrNotFound", err)
	}
}
