package model

import (
	"time"
	"unicode/utf8"

	"github.com/sakif/forum-api/internal/apperror"
)

// MaxThreadTitleLength matches the threads.title column width.
const MaxThreadTitleLength = 50

// NewThread is a validated thread creation request.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

// ParseNewThread validates the client payload. owner comes from the
// authenticated request, not from the body.
func ParseNewThread(p Payload, owner string) (*NewThread, error) {
	v, err := withOwner(p, owner).requireStrings(apperror.EntityNewThread, "title", "body", "owner")
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(v[0]) > MaxThreadTitleLength {
		return nil, apperror.Domain(apperror.EntityNewThread, apperror.ReasonTitleLimitChar)
	}
	return &NewThread{Title: v[0], Body: v[1], Owner: v[2]}, nil
}

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (*AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return nil, apperror.Domain(apperror.EntityAddedThread, apperror.ReasonMissingProperty)
	}
	return &AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// Thread is a stored thread joined with its owner's username.
type Thread struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadDetails is the aggregated read model returned by GetThread.
type ThreadDetails struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Date     time.Time        `json:"date"`
	Username string           `json:"username"`
	Comments []CommentDetails `json:"comments"`
}

// NewThreadDetails wraps a thread and its already assembled comments.
func NewThreadDetails(t Thread, comments []CommentDetails) *ThreadDetails {
	if comments == nil {
		comments = []CommentDetails{}
	}
	return &ThreadDetails{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}
}

// withOwner returns a copy of p with the owner field set, leaving the
// caller's map untouched.
func withOwner(p Payload, owner string) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out["owner"] = owner
	return out
}
