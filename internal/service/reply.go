package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// ReplyService adds and soft-deletes replies to a comment.
type ReplyService struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	replies  repository.ReplyRepository
	logger   *slog.Logger
}

func NewReplyService(
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	replies repository.ReplyRepository,
	logger *slog.Logger,
) *ReplyService {
	return &ReplyService{
		threads:  threads,
		comments: comments,
		replies:  replies,
		logger:   logger,
	}
}

// AddReply requires both the thread and the comment to exist.
func (s *ReplyService) AddReply(ctx context.Context, p model.Payload, threadID, commentID, owner string) (*model.AddedReply, error) {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return nil, err
	}
	if err := s.comments.VerifyCommentExist(ctx, commentID); err != nil {
		return nil, err
	}

	reply, err := model.ParseNewReply(p, commentID, owner)
	if err != nil {
		return nil, err
	}

	added, err := s.replies.AddReply(ctx, reply)
	if err != nil {
		return nil, fmt.Errorf("service/reply: adding reply to %s: %w", commentID, err)
	}
	return added, nil
}

// DeleteReply soft-deletes a reply owned by owner.
func (s *ReplyService) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExist(ctx, commentID); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyExist(ctx, replyID); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(ctx, replyID, owner); err != nil {
		return err
	}

	if err := s.replies.DeleteReplyByID(ctx, replyID); err != nil {
		return fmt.Errorf("service/reply: deleting %s: %w", replyID, err)
	}

	s.logger.Info("reply deleted",
		slog.String("replyID", replyID),
		slog.String("owner", owner),
	)
	return nil
}
