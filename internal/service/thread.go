package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// maxDetailFetches bounds how many comments GetThread loads concurrently.
const maxDetailFetches = 8

// ThreadService creates threads and assembles the thread detail view.
type ThreadService struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	replies  repository.ReplyRepository
	likes    repository.LikeRepository
	logger   *slog.Logger
}

func NewThreadService(
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	replies repository.ReplyRepository,
	likes repository.LikeRepository,
	logger *slog.Logger,
) *ThreadService {
	return &ThreadService{
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
		logger:   logger,
	}
}

// AddThread validates the payload and stores a thread owned by owner.
func (s *ThreadService) AddThread(ctx context.Context, p model.Payload, owner string) (*model.AddedThread, error) {
	thread, err := model.ParseNewThread(p, owner)
	if err != nil {
		return nil, err
	}

	added, err := s.threads.AddThread(ctx, thread)
	if err != nil {
		return nil, fmt.Errorf("service/thread: adding thread: %w", err)
	}

	s.logger.Info("thread created",
		slog.String("threadID", added.ID),
		slog.String("owner", owner),
	)
	return added, nil
}

// GetThread returns a thread with its comments, each comment carrying its
// replies and like count.
//
// FAN-OUT:
// Replies and like counts are independent per comment, so each comment is
// loaded in its own goroutine. Results go into a slice slot indexed by the
// comment's position, which keeps the repository's date order no matter
// which goroutine finishes first. The first failure cancels the rest.
//
// Deleted comments and replies keep their place but have their content
// replaced by a placeholder.
func (s *ThreadService) GetThread(ctx context.Context, threadID string) (*model.ThreadDetails, error) {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return nil, err
	}

	thread, err := s.threads.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("service/thread: fetching thread %s: %w", threadID, err)
	}

	comments, err := s.comments.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("service/thread: fetching comments of %s: %w", threadID, err)
	}

	details := make([]model.CommentDetails, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailFetches)

	for i, c := range comments {
		i, c := i, c // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			replies, err := s.replies.GetRepliesByCommentID(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("fetching replies of %s: %w", c.ID, err)
			}
			likeCount, err := s.likes.CountCommentLikes(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("counting likes of %s: %w", c.ID, err)
			}
			details[i] = model.NewCommentDetails(c, likeCount, model.NewReplyDetailsList(replies))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service/thread: %w", err)
	}

	return model.NewThreadDetails(*thread, details), nil
}
