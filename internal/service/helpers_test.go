package service

import (
	"reflect"
	"testing"

	"github.com/sakif/forum-api/internal/model"
)

// =========================================================================
// HELPERS
// =========================================================================

// seedUser stores a user whose password is "secret" and returns its id.
func seedUser(f *fakeStore, username string) string {
	id := f.newID("user")
	f.users[username] = fakeUser{id: id, password: "hashed:secret", fullname: "Dicoding Indonesia"}
	return id
}

func seedThread(f *fakeStore, owner string) string {
	id := f.newID("thread")
	f.threads[id] = model.Thread{ID: id, Title: "sebuah thread", Body: "sebuah body thread", Date: f.tick(), Username: f.usernameOf(owner)}
	return id
}

func seedComment(f *fakeStore, threadID, owner, content string) string {
	id := f.newID("comment")
	f.comments = append(f.comments, fakeComment{
		Comment:  model.Comment{ID: id, Username: f.usernameOf(owner), Date: f.tick(), Content: content},
		threadID: threadID,
		owner:    owner,
	})
	return id
}

func seedReply(f *fakeStore, commentID, owner, content string) string {
	id := f.newID("reply")
	f.replies = append(f.replies, fakeReply{
		Reply:     model.Reply{ID: id, Content: content, Date: f.tick(), Username: f.usernameOf(owner)},
		commentID: commentID,
		owner:     owner,
	})
	return id
}

// assertCalls checks the exact sequence of repository calls.
func assertCalls(t *testing.T, f *fakeStore, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	got := f.calls
	if got == nil {
		got = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v\n want %v", got, want)
	}
}
