package model

import (
	"time"

	"github.com/sakif/forum-api/internal/apperror"
)

// DeletedReplyContent replaces the content of a soft-deleted reply.
const DeletedReplyContent = "**balasan telah dihapus**"

type NewReply struct {
	CommentID string
	Content   string
	Owner     string
}

func ParseNewReply(p Payload, commentID, owner string) (*NewReply, error) {
	p = withOwner(p, owner)
	p["commentId"] = commentID
	v, err := p.requireStrings(apperror.EntityNewReply, "commentId", "content", "owner")
	if err != nil {
		return nil, err
	}
	return &NewReply{CommentID: v[0], Content: v[1], Owner: v[2]}, nil
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (*AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return nil, apperror.Domain(apperror.EntityAddedReply, apperror.ReasonMissingProperty)
	}
	return &AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// Reply is a stored reply joined with its author's username.
type Reply struct {
	ID        string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

type ReplyDetails struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

func NewReplyDetails(r Reply) ReplyDetails {
	content := r.Content
	if r.IsDeleted {
		content = DeletedReplyContent
	}
	return ReplyDetails{
		ID:       r.ID,
		Content:  content,
		Date:     r.Date,
		Username: r.Username,
	}
}

// NewReplyDetailsList formats replies in the order given.
func NewReplyDetailsList(replies []Reply) []ReplyDetails {
	out := make([]ReplyDetails, 0, len(replies))
	for _, r := range replies {
		out = append(out, NewReplyDetails(r))
	}
	return out
}
