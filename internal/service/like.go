package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/forum-api/internal/repository"
)

// LikeService toggles comment likes and lists a user's like history.
type LikeService struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	logger   *slog.Logger
}

func NewLikeService(
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	logger *slog.Logger,
) *LikeService {
	return &LikeService{
		threads:  threads,
		comments: comments,
		likes:    likes,
		logger:   logger,
	}
}

// LikeUnlike flips userID's like on a comment: liked becomes unliked and
// vice versa.
//
// When the store implements repository.LikeToggler the check and the write
// happen in one transaction, so two concurrent requests from the same user
// cannot both insert. Otherwise it falls back to check-then-act.
func (s *LikeService) LikeUnlike(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threads.VerifyThreadExist(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExist(ctx, commentID); err != nil {
		return err
	}

	if toggler, ok := s.likes.(repository.LikeToggler); ok {
		liked, err := toggler.ToggleLike(ctx, commentID, userID)
		if err != nil {
			return fmt.Errorf("service/like: toggling like on %s: %w", commentID, err)
		}
		s.logToggle(commentID, userID, liked)
		return nil
	}

	liked, err := s.likes.CheckIfUserHasLikedComment(ctx, commentID, userID)
	if err != nil {
		return fmt.Errorf("service/like: checking like on %s: %w", commentID, err)
	}
	if liked {
		err = s.likes.UnlikeComment(ctx, commentID, userID)
	} else {
		err = s.likes.LikeComment(ctx, commentID, userID)
	}
	if err != nil {
		return fmt.Errorf("service/like: updating like on %s: %w", commentID, err)
	}
	s.logToggle(commentID, userID, !liked)
	return nil
}

// GetUserLikeHistory returns the ids of the comments userID has liked,
// most recent first.
func (s *LikeService) GetUserLikeHistory(ctx context.Context, userID string) ([]string, error) {
	history, err := s.likes.GetUserLikeHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service/like: fetching history of %s: %w", userID, err)
	}
	return history, nil
}

func (s *LikeService) logToggle(commentID, userID string, liked bool) {
	s.logger.Debug("comment like toggled",
		slog.String("commentID", commentID),
		slog.String("userID", userID),
		slog.Bool("liked", liked),
	)
}
