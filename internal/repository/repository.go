// Package repository declares the storage contracts the use cases depend on.
//
// Every method takes a context and returns an explicit error. Lookups that
// miss return an *apperror.AppError of the matching kind so the services can
// pass them through unchanged.
package repository

import (
	"context"

	"github.com/sakif/forum-api/internal/model"
)

type UserRepository interface {
	AddUser(ctx context.Context, user *model.RegisterUser) (*model.RegisteredUser, error)
	// VerifyAvailableUsername fails with an invariant error when the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error
	// GetPasswordByUsername fails with an invariant error when the username is unknown.
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIDByUsername(ctx context.Context, username string) (string, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	// CheckAvailabilityToken fails with an invariant error when the token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type ThreadRepository interface {
	AddThread(ctx context.Context, thread *model.NewThread) (*model.AddedThread, error)
	VerifyThreadExist(ctx context.Context, threadID string) error
	GetThreadByID(ctx context.Context, threadID string) (*model.Thread, error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment *model.NewComment) (*model.AddedComment, error)
	VerifyCommentExist(ctx context.Context, commentID string) error
	// VerifyCommentOwner fails with an authorization error when userID does not own the comment.
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error
	// DeleteCommentByID soft-deletes: the row stays, is_deleted becomes true.
	DeleteCommentByID(ctx context.Context, commentID string) error
	// GetCommentsByThreadID returns comments oldest first.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]model.Comment, error)
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply *model.NewReply) (*model.AddedReply, error)
	VerifyReplyExist(ctx context.Context, replyID string) error
	VerifyReplyOwner(ctx context.Context, replyID, userID string) error
	DeleteReplyByID(ctx context.Context, replyID string) error
	// GetRepliesByCommentID returns replies oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]model.Reply, error)
}

type LikeRepository interface {
	CheckIfUserHasLikedComment(ctx context.Context, commentID, userID string) (bool, error)
	LikeComment(ctx context.Context, commentID, userID string) error
	UnlikeComment(ctx context.Context, commentID, userID string) error
	CountCommentLikes(ctx context.Context, commentID string) (int, error)
	// GetUserLikeHistory returns the ids of comments userID liked, newest like first.
	GetUserLikeHistory(ctx context.Context, userID string) ([]string, error)
}

// LikeToggler is implemented by stores that can flip a like in one
// transaction. It reports whether the like exists afterwards.
type LikeToggler interface {
	ToggleLike(ctx context.Context, commentID, userID string) (liked bool, err error)
}
