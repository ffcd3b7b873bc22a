package handler

import (
	"context"

	"github.com/sakif/forum-api/internal/model"
)

// The handlers depend on these interfaces rather than on the service
// structs, so tests can swap in fakes. The *Service types in
// internal/service satisfy them.

type UserService interface {
	AddUser(ctx context.Context, p model.Payload) (*model.RegisteredUser, error)
}

type AuthService interface {
	Login(ctx context.Context, p model.Payload) (*model.NewAuth, error)
	Logout(ctx context.Context, p model.Payload) error
	Refresh(ctx context.Context, p model.Payload) (string, error)
}

type ThreadService interface {
	AddThread(ctx context.Context, p model.Payload, owner string) (*model.AddedThread, error)
	GetThread(ctx context.Context, threadID string) (*model.ThreadDetails, error)
}

type CommentService interface {
	AddComment(ctx context.Context, p model.Payload, threadID, owner string) (*model.AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error
}

type ReplyService interface {
	AddReply(ctx context.Context, p model.Payload, threadID, commentID, owner string) (*model.AddedReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error
}

type LikeService interface {
	LikeUnlike(ctx context.Context, threadID, commentID, userID string) error
	GetUserLikeHistory(ctx context.Context, userID string) ([]string, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
