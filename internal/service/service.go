// Package service contains the forum's use cases.
//
// THE LAYERS:
//
//	Handler (HTTP layer)     → decodes the JSON body into a model.Payload, writes responses
//	Service (use case layer) → runs the guard sequence, orchestrates repositories
//	Repository (data layer)  → reads/writes the database
//
// Every use case is a fixed sequence of guards followed by one effect. The
// guards run in a documented order and the first failure wins, so a client
// always sees the same error for the same bad request: a missing thread is
// reported before a missing comment, a missing comment before a wrong owner.
//
// Services return errors untouched apart from wrapping. Entity validation
// failures stay DomainErrors here; the transport translates them into
// user-facing messages (apperror.Translate).
//
// DEPENDENCY INJECTION:
// Services take repository interfaces and the small TokenIssuer and
// PasswordHasher interfaces below, never concrete types. Tests pass in-memory
// fakes; the server passes *sqlite.DB or *postgres.DB and the auth package.
package service

import "github.com/sakif/forum-api/internal/model"

// PasswordHasher is satisfied by *auth.PasswordService.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// ComparePassword returns an authentication error on mismatch.
	ComparePassword(plaintext, hash string) error
}

// TokenIssuer is satisfied by *auth.TokenManager.
type TokenIssuer interface {
	CreateAccessToken(p model.TokenPayload) (string, error)
	CreateRefreshToken(p model.TokenPayload) (string, error)
	// VerifyRefreshToken returns an invariant error for a bad signature.
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (model.TokenPayload, error)
}
