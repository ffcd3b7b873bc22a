package model

import (
	"errors"
	"testing"
	"time"

	"github.com/sakif/forum-api/internal/apperror"
)

// =========================================================================
// COMMENT TESTS
// =========================================================================

func TestParseNewComment(t *testing.T) {
	got, err := ParseNewComment(Payload{"content": "komen"}, "thread-1", "user-1")
	if err != nil {
		t.Fatalf("ParseNewComment() error = %v", err)
	}
	if got.ThreadID != "thread-1" || got.Content != "komen" || got.Owner != "user-1" {
		t.Errorf("ParseNewComment() = %+v", got)
	}

	if _, err := ParseNewComment(Payload{}, "thread-1", "user-1"); !errors.Is(err, apperror.Domain(apperror.EntityNewComment, apperror.ReasonMissingProperty)) {
		t.Errorf("ParseNewComment(empty) error = %v", err)
	}
	if _, err := ParseNewComment(Payload{"content": float64(7)}, "thread-1", "user-1"); !errors.Is(err, apperror.Domain(apperror.EntityNewComment, apperror.ReasonInvalidType)) {
		t.Errorf("ParseNewComment(number) error = %v", err)
	}
}

func TestNewCommentDetails(t *testing.T) {
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	live := NewCommentDetails(Comment{ID: "comment-1", Username: "dicoding", Date: date, Content: "komen"}, 2, nil)
	if live.Content != "komen" || live.LikeCount != 2 {
		t.Errorf("live comment = %+v", live)
	}
	if live.Replies == nil {
		t.Error("Replies is nil, want empty slice")
	}

	deleted := NewCommentDetails(Comment{ID: "comment-2", Username: "dicoding", Date: date, Content: "rahasia", IsDeleted: true}, 0, nil)
	if deleted.Content != DeletedCommentContent {
		t.Errorf("deleted Content = %q, want %q", deleted.Content, DeletedCommentContent)
	}
	if deleted.ID != "comment-2" || !deleted.Date.Equal(date) {
		t.Errorf("deleted comment lost its identity: %+v", deleted)
	}
}

// =========================================================================
// REPLY TESTS
// =========================================================================

func TestParseNewReply(t *testing.T) {
	got, err := ParseNewReply(Payload{"content": "balasan"}, "comment-1", "user-1")
	if err != nil || got.CommentID != "comment-1" || got.Owner != "user-1" {
		t.Errorf("ParseNewReply() = %+v, %v", got, err)
	}
	if _, err := ParseNewReply(Payload{"content": true}, "comment-1", "user-1"); !errors.Is(err, apperror.Domain(apperror.EntityNewReply, apperror.ReasonInvalidType)) {
		t.Errorf("ParseNewReply(bool) error = %v", err)
	}
}

func TestNewReplyDetailsList(t *testing.T) {
	list := NewReplyDetailsList([]Reply{
		{ID: "reply-1", Content: "satu", Username: "a"},
		{ID: "reply-2", Content: "dua", Username: "b", IsDeleted: true},
	})
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Content != "satu" || list[1].Content != DeletedReplyContent {
		t.Errorf("contents = [%q %q]", list[0].Content, list[1].Content)
	}

	if empty := NewReplyDetailsList(nil); empty == nil || len(empty) != 0 {
		t.Errorf("NewReplyDetailsList(nil) = %#v, want empty non-nil slice", empty)
	}
}
