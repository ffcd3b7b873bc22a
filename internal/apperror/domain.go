package apperror

import "fmt"

// Entity names the record or use case whose payload check failed.
type Entity int

const (
	EntityRegisterUser Entity = iota + 1
	EntityRegisteredUser
	EntityUserLogin
	EntityNewAuth
	EntityNewThread
	EntityAddedThread
	EntityNewComment
	EntityAddedComment
	EntityNewReply
	EntityAddedReply
	EntityRefreshAuthentication
	EntityDeleteAuthentication
)

var entityNames = map[Entity]string{
	EntityRegisterUser:          "REGISTER_USER",
	EntityRegisteredUser:        "REGISTERED_USER",
	EntityUserLogin:             "USER_LOGIN",
	EntityNewAuth:               "NEW_AUTH",
	EntityNewThread:             "NEW_THREAD",
	EntityAddedThread:           "ADDED_THREAD",
	EntityNewComment:            "NEW_COMMENT",
	EntityAddedComment:          "ADDED_COMMENT",
	EntityNewReply:              "NEW_REPLY",
	EntityAddedReply:            "ADDED_REPLY",
	EntityRefreshAuthentication: "REFRESH_AUTHENTICATION_USE_CASE",
	EntityDeleteAuthentication:  "DELETE_AUTHENTICATION_USE_CASE",
}

func (e Entity) String() string {
	if name, ok := entityNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ENTITY(%d)", int(e))
}

// Reason is the sub-code of a DomainError.
type Reason int

const (
	ReasonMissingProperty Reason = iota + 1
	ReasonInvalidType
	ReasonUsernameLimitChar
	ReasonUsernameRestrictedChar
	ReasonTitleLimitChar
	ReasonMissingRefreshToken
	ReasonRefreshTokenInvalidType
)

var reasonNames = map[Reason]string{
	ReasonMissingProperty:         "NOT_CONTAIN_NEEDED_PROPERTY",
	ReasonInvalidType:             "NOT_MEET_DATA_TYPE_SPECIFICATION",
	ReasonUsernameLimitChar:       "USERNAME_LIMIT_CHAR",
	ReasonUsernameRestrictedChar:  "USERNAME_CONTAIN_RESTRICTED_CHARACTER",
	ReasonTitleLimitChar:          "TITLE_LIMIT_CHAR",
	ReasonMissingRefreshToken:     "NOT_CONTAIN_REFRESH_TOKEN",
	ReasonRefreshTokenInvalidType: "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("REASON(%d)", int(r))
}

// DomainError is raised by entity constructors and payload checks. It is not
// client-facing until Translate turns it into an Invariant AppError.
type DomainError struct {
	Entity Entity
	Reason Reason
}

// Domain builds a DomainError for the given entity and reason.
func Domain(entity Entity, reason Reason) *DomainError {
	return &DomainError{Entity: entity, Reason: reason}
}

// Code renders the machine-readable form, e.g. REGISTER_USER.USERNAME_LIMIT_CHAR.
func (e *DomainError) Code() string {
	return e.Entity.String() + "." + e.Reason.String()
}

func (e *DomainError) Error() string {
	return e.Code()
}

// Is matches another DomainError with the same entity and reason, so tests and
// callers can use errors.Is(err, apperror.Domain(...)).
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Entity == e.Entity && t.Reason == e.Reason
}
