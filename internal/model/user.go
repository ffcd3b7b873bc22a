package model

import (
	"regexp"
	"unicode/utf8"

	"github.com/sakif/forum-api/internal/apperror"
)

// MaxUsernameLength matches the users.username column width.
const MaxUsernameLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

// User is a stored account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}

// RegisterUser is a validated registration request.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// ParseRegisterUser validates a registration payload.
//
// Checks run in order: presence, type, username length, username charset.
// The username may only contain letters, digits and underscores.
func ParseRegisterUser(p Payload) (*RegisterUser, error) {
	v, err := p.requireStrings(apperror.EntityRegisterUser, "username", "password", "fullname")
	if err != nil {
		return nil, err
	}
	username := v[0]

	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, apperror.Domain(apperror.EntityRegisterUser, apperror.ReasonUsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return nil, apperror.Domain(apperror.EntityRegisterUser, apperror.ReasonUsernameRestrictedChar)
	}

	return &RegisterUser{Username: username, Password: v[1], Fullname: v[2]}, nil
}

// RegisteredUser is what registration hands back to the client.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// NewRegisteredUser checks that the stored user came back complete.
func NewRegisteredUser(id, username, fullname string) (*RegisteredUser, error) {
	if id == "" || username == "" || fullname == "" {
		return nil, apperror.Domain(apperror.EntityRegisteredUser, apperror.ReasonMissingProperty)
	}
	return &RegisteredUser{ID: id, Username: username, Fullname: fullname}, nil
}

// UserLogin is a validated login request.
type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p Payload) (*UserLogin, error) {
	v, err := p.requireStrings(apperror.EntityUserLogin, "username", "password")
	if err != nil {
		return nil, err
	}
	return &UserLogin{Username: v[0], Password: v[1]}, nil
}
