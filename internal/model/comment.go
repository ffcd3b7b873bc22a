package model

import (
	"time"

	"github.com/sakif/forum-api/internal/apperror"
)

// DeletedCommentContent replaces the content of a soft-deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

type NewComment struct {
	ThreadID string
	Content  string
	Owner    string
}

func ParseNewComment(p Payload, threadID, owner string) (*NewComment, error) {
	p = withOwner(p, owner)
	p["threadId"] = threadID
	v, err := p.requireStrings(apperror.EntityNewComment, "threadId", "content", "owner")
	if err != nil {
		return nil, err
	}
	return &NewComment{ThreadID: v[0], Content: v[1], Owner: v[2]}, nil
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (*AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return nil, apperror.Domain(apperror.EntityAddedComment, apperror.ReasonMissingProperty)
	}
	return &AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// Comment is a stored comment joined with its author's username.
type Comment struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

type CommentDetails struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Date      time.Time      `json:"date"`
	Content   string         `json:"content"`
	LikeCount int            `json:"likeCount"`
	Replies   []ReplyDetails `json:"replies"`
}

// NewCommentDetails builds the read model for one comment. A deleted
// comment keeps its id, author and date but its content is replaced by
// DeletedCommentContent.
func NewCommentDetails(c Comment, likeCount int, replies []ReplyDetails) CommentDetails {
	content := c.Content
	if c.IsDeleted {
		content = DeletedCommentContent
	}
	if replies == nil {
		replies = []ReplyDetails{}
	}
	return CommentDetails{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date,
		Content:   content,
		LikeCount: likeCount,
		Replies:   replies,
	}
}
