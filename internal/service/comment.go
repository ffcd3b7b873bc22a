package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// CommentService adds and soft-deletes comments on a thread.
type CommentService struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	logger   *slog.Logger
}

func NewCommentService(threads repository.ThreadRepository, comments repository.CommentRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		threads:  threads,
		comments: comments,
		logger:   logger,
	}
}

// AddComment checks the thread exists before validating the payload: a
// comment on a missing thread is a 404 even when the body is also bad.
func (s *CommentService) AddComment(ctx context.Context, p model.Payload, threadID, owner string) (*model.AddedComment, error) {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return nil, err
	}

	comment, err := model.ParseNewComment(p, threadID, owner)
	if err != nil {
		return nil, err
	}

	added, err := s.comments.AddComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("service/comment: adding comment to %s: %w", threadID, err)
	}
	return added, nil
}

// DeleteComment soft-deletes a comment. Existence is checked before
// ownership, so a missing comment is 404 for everyone, never 403.
func (s *CommentService) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExist(ctx, commentID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, commentID, owner); err != nil {
		return err
	}

	if err := s.comments.DeleteCommentByID(ctx, commentID); err != nil {
		return fmt.Errorf("service/comment: deleting %s: %w", commentID, err)
	}

	s.logger.Info("comment deleted",
		slog.String("commentID", commentID),
		slog.String("owner", owner),
	)
	return nil
}
