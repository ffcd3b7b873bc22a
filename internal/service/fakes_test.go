package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
	"github.com/sakif/forum-api/internal/repository"
)

// =========================================================================
// FAKES
// =========================================================================
//
// fakeStore is an in-memory implementation of every repository interface.
// It records each call by method name so tests can assert the guard order,
// and fail lets a test make any method return an error.

type fakeUser struct {
	id, password, fullname string
}

type fakeComment struct {
	model.Comment
	threadID, owner string
}

type fakeReply struct {
	model.Reply
	commentID, owner string
}

type fakeLike struct {
	commentID, owner string
}

type fakeStore struct {
	users    map[string]fakeUser // keyed by username
	tokens   map[string]bool
	threads  map[string]model.Thread
	comments []fakeComment
	replies  []fakeReply
	likes    []fakeLike // oldest first
	nextID   int
	clock    time.Time

	calls []string
	fail  map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]fakeUser),
		tokens:  make(map[string]bool),
		threads: make(map[string]model.Thread),
		fail:    make(map[string]error),
		clock:   time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC),
	}
}

func (f *fakeStore) call(name string) error {
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeStore) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) usernameOf(id string) string {
	for name, u := range f.users {
		if u.id == id {
			return name
		}
	}
	return ""
}

// --- users ---

func (f *fakeStore) AddUser(_ context.Context, u *model.RegisterUser) (*model.RegisteredUser, error) {
	if err := f.call("AddUser"); err != nil {
		return nil, err
	}
	id := f.newID("user")
	f.users[u.Username] = fakeUser{id: id, password: u.Password, fullname: u.Fullname}
	return &model.RegisteredUser{ID: id, Username: u.Username, Fullname: u.Fullname}, nil
}

func (f *fakeStore) VerifyAvailableUsername(_ context.Context, username string) error {
	if err := f.call("VerifyAvailableUsername"); err != nil {
		return err
	}
	if _, ok := f.users[username]; ok {
		return apperror.Invariant("username tidak tersedia")
	}
	return nil
}

func (f *fakeStore) GetPasswordByUsername(_ context.Context, username string) (string, error) {
	if err := f.call("GetPasswordByUsername"); err != nil {
		return "", err
	}
	u, ok := f.users[username]
	if !ok {
		return "", apperror.Invariant("username tidak ditemukan")
	}
	return u.password, nil
}

func (f *fakeStore) GetIDByUsername(_ context.Context, username string) (string, error) {
	if err := f.call("GetIDByUsername"); err != nil {
		return "", err
	}
	u, ok := f.users[username]
	if !ok {
		return "", apperror.Invariant("user tidak ditemukan")
	}
	return u.id, nil
}

// --- authentications ---

func (f *fakeStore) AddToken(_ context.Context, token string) error {
	if err := f.call("AddToken"); err != nil {
		return err
	}
	f.tokens[token] = true
	return nil
}

func (f *fakeStore) CheckAvailabilityToken(_ context.Context, token string) error {
	if err := f.call("CheckAvailabilityToken"); err != nil {
		return err
	}
	if !f.tokens[token] {
		return apperror.Invariant("refresh token tidak ditemukan di database")
	}
	return nil
}

func (f *fakeStore) DeleteToken(_ context.Context, token string) error {
	if err := f.call("DeleteToken"); err != nil {
		return err
	}
	delete(f.tokens, token)
	return nil
}

// --- threads ---

func (f *fakeStore) AddThread(_ context.Context, t *model.NewThread) (*model.AddedThread, error) {
	if err := f.call("AddThread"); err != nil {
		return nil, err
	}
	id := f.newID("thread")
	f.threads[id] = model.Thread{ID: id, Title: t.Title, Body: t.Body, Date: f.tick(), Username: f.usernameOf(t.Owner)}
	return &model.AddedThread{ID: id, Title: t.Title, Owner: t.Owner}, nil
}

func (f *fakeStore) VerifyThreadExist(_ context.Context, threadID string) error {
	if err := f.call("VerifyThreadExist"); err != nil {
		return err
	}
	if _, ok := f.threads[threadID]; !ok {
		return apperror.NotFound("Thread tidak ditemukan")
	}
	return nil
}

func (f *fakeStore) GetThreadByID(_ context.Context, threadID string) (*model.Thread, error) {
	if err := f.call("GetThreadByID"); err != nil {
		return nil, err
	}
	t, ok := f.threads[threadID]
	if !ok {
		return nil, apperror.NotFound("Thread tidak ditemukan")
	}
	return &t, nil
}

// --- comments ---

func (f *fakeStore) findComment(id string) *fakeComment {
	for i := range f.comments {
		if f.comments[i].ID == id {
			return &f.comments[i]
		}
	}
	return nil
}

func (f *fakeStore) AddComment(_ context.Context, c *model.NewComment) (*model.AddedComment, error) {
	if err := f.call("AddComment"); err != nil {
		return nil, err
	}
	id := f.newID("comment")
	f.comments = append(f.comments, fakeComment{
		Comment:  model.Comment{ID: id, Username: f.usernameOf(c.Owner), Date: f.tick(), Content: c.Content},
		threadID: c.ThreadID,
		owner:    c.Owner,
	})
	return &model.AddedComment{ID: id, Content: c.Content, Owner: c.Owner}, nil
}

func (f *fakeStore) VerifyCommentExist(_ context.Context, commentID string) error {
	if err := f.call("VerifyCommentExist"); err != nil {
		return err
	}
	if f.findComment(commentID) == nil {
		return apperror.NotFound("Comment tidak ditemukan")
	}
	return nil
}

func (f *fakeStore) VerifyCommentOwner(_ context.Context, commentID, userID string) error {
	if err := f.call("VerifyCommentOwner"); err != nil {
		return err
	}
	c := f.findComment(commentID)
	if c == nil {
		return apperror.NotFound("Comment tidak ditemukan")
	}
	if c.owner != userID {
		return apperror.Authorization("Anda tidak berhak menghapus comment ini")
	}
	return nil
}

func (f *fakeStore) DeleteCommentByID(_ context.Context, commentID string) error {
	if err := f.call("DeleteCommentByID"); err != nil {
		return err
	}
	c := f.findComment(commentID)
	if c == nil {
		return apperror.NotFound("Comment tidak ditemukan")
	}
	c.IsDeleted = true
	return nil
}

func (f *fakeStore) GetCommentsByThreadID(_ context.Context, threadID string) ([]model.Comment, error) {
	if err := f.call("GetCommentsByThreadID"); err != nil {
		return nil, err
	}
	out := []model.Comment{}
	for _, c := range f.comments {
		if c.threadID == threadID {
			out = append(out, c.Comment)
		}
	}
	return out, nil
}

// --- replies ---

func (f *fakeStore) findReply(id string) *fakeReply {
	for i := range f.replies {
		if f.replies[i].ID == id {
			return &f.replies[i]
		}
	}
	return nil
}

func (f *fakeStore) AddReply(_ context.Context, r *model.NewReply) (*model.AddedReply, error) {
	if err := f.call("AddReply"); err != nil {
		return nil, err
	}
	id := f.newID("reply")
	f.replies = append(f.replies, fakeReply{
		Reply:     model.Reply{ID: id, Content: r.Content, Date: f.tick(), Username: f.usernameOf(r.Owner)},
		commentID: r.CommentID,
		owner:     r.Owner,
	})
	return &model.AddedReply{ID: id, Content: r.Content, Owner: r.Owner}, nil
}

func (f *fakeStore) VerifyReplyExist(_ context.Context, replyID string) error {
	if err := f.call("VerifyReplyExist"); err != nil {
		return err
	}
	if f.findReply(replyID) == nil {
		return apperror.NotFound("Reply tidak ditemukan")
	}
	return nil
}

func (f *fakeStore) VerifyReplyOwner(_ context.Context, replyID, userID string) error {
	if err := f.call("VerifyReplyOwner"); err != nil {
		return err
	}
	r := f.findReply(replyID)
	if r == nil {
		return apperror.NotFound("Reply tidak ditemukan")
	}
	if r.owner != userID {
		return apperror.Authorization("Anda tidak berhak menghapus reply ini")
	}
	return nil
}

func (f *fakeStore) DeleteReplyByID(_ context.Context, replyID string) error {
	if err := f.call("DeleteReplyByID"); err != nil {
		return err
	}
	r := f.findReply(replyID)
	if r == nil {
		return apperror.NotFound("Reply tidak ditemukan")
	}
	r.IsDeleted = true
	return nil
}

// GetRepliesByCommentID and CountCommentLikes are called from GetThread's
// goroutines, so they do not record calls and only read state.
func (f *fakeStore) GetRepliesByCommentID(_ context.Context, commentID string) ([]model.Reply, error) {
	if err := f.fail["GetRepliesByCommentID"]; err != nil {
		return nil, err
	}
	out := []model.Reply{}
	for _, r := range f.replies {
		if r.commentID == commentID {
			out = append(out, r.Reply)
		}
	}
	return out, nil
}

// --- likes ---

func (f *fakeStore) likeIndex(commentID, userID string) int {
	for i, l := range f.likes {
		if l.commentID == commentID && l.owner == userID {
			return i
		}
	}
	return -1
}

func (f *fakeStore) CheckIfUserHasLikedComment(_ context.Context, commentID, userID string) (bool, error) {
	if err := f.call("CheckIfUserHasLikedComment"); err != nil {
		return false, err
	}
	return f.likeIndex(commentID, userID) >= 0, nil
}

func (f *fakeStore) LikeComment(_ context.Context, commentID, userID string) error {
	if err := f.call("LikeComment"); err != nil {
		return err
	}
	if f.likeIndex(commentID, userID) < 0 {
		f.likes = append(f.likes, fakeLike{commentID: commentID, owner: userID})
	}
	return nil
}

func (f *fakeStore) UnlikeComment(_ context.Context, commentID, userID string) error {
	if err := f.call("UnlikeComment"); err != nil {
		return err
	}
	if i := f.likeIndex(commentID, userID); i >= 0 {
		f.likes = append(f.likes[:i], f.likes[i+1:]...)
	}
	return nil
}

func (f *fakeStore) CountCommentLikes(_ context.Context, commentID string) (int, error) {
	if err := f.fail["CountCommentLikes"]; err != nil {
		return 0, err
	}
	n := 0
	for _, l := range f.likes {
		if l.commentID == commentID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetUserLikeHistory(_ context.Context, userID string) ([]string, error) {
	if err := f.call("GetUserLikeHistory"); err != nil {
		return nil, err
	}
	out := []string{}
	for i := len(f.likes) - 1; i >= 0; i-- {
		if f.likes[i].owner == userID {
			out = append(out, f.likes[i].commentID)
		}
	}
	return out, nil
}

// togglingStore adds the transactional toggle to fakeStore.
type togglingStore struct {
	*fakeStore
}

func (s togglingStore) ToggleLike(_ context.Context, commentID, userID string) (bool, error) {
	if err := s.call("ToggleLike"); err != nil {
		return false, err
	}
	if i := s.likeIndex(commentID, userID); i >= 0 {
		s.likes = append(s.likes[:i], s.likes[i+1:]...)
		return false, nil
	}
	s.likes = append(s.likes, fakeLike{commentID: commentID, owner: userID})
	return true, nil
}

var (
	_ repository.UserRepository           = (*fakeStore)(nil)
	_ repository.AuthenticationRepository = (*fakeStore)(nil)
	_ repository.ThreadRepository         = (*fakeStore)(nil)
	_ repository.CommentRepository        = (*fakeStore)(nil)
	_ repository.ReplyRepository          = (*fakeStore)(nil)
	_ repository.LikeRepository           = (*fakeStore)(nil)
	_ repository.LikeToggler              = togglingStore{}
)

// fakeHasher "hashes" by prefixing, so tests can see what was stored.
type fakeHasher struct {
	hashErr error
}

func (h fakeHasher) Hash(plaintext string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (fakeHasher) ComparePassword(plaintext, hash string) error {
	if hash != "hashed:"+plaintext {
		return apperror.Authentication("kredensial yang Anda masukkan salah")
	}
	return nil
}

// fakeIssuer mints readable tokens: "access:<id>:<username>:<n>".
type fakeIssuer struct {
	n int
}

func (i *fakeIssuer) CreateAccessToken(p model.TokenPayload) (string, error) {
	i.n++
	return fmt.Sprintf("access:%s:%s:%d", p.ID, p.Username, i.n), nil
}

func (i *fakeIssuer) CreateRefreshToken(p model.TokenPayload) (string, error) {
	i.n++
	return fmt.Sprintf("refresh:%s:%s:%d", p.ID, p.Username, i.n), nil
}

func (i *fakeIssuer) VerifyRefreshToken(token string) error {
	if !strings.HasPrefix(token, "refresh:") {
		return apperror.Invariant("refresh token tidak valid")
	}
	return nil
}

func (i *fakeIssuer) DecodePayload(token string) (model.TokenPayload, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 4 {
		return model.TokenPayload{}, errors.New("fake: malformed token")
	}
	return model.TokenPayload{ID: parts[1], Username: parts[2]}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
