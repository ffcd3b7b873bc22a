package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sakif/forum-api/internal/model"
)

// contextKey is an unexported type used for context keys in this package.
//
// context.WithValue accepts any key. A package-private type means no other
// package can construct the same key and shadow the authenticated user.
type contextKey string

const userKey contextKey = "user"

// msgMissingAuthentication is the body message for every rejected request,
// whether the header was absent, malformed, expired or forged.
const msgMissingAuthentication = "Missing authentication"

// RequireAuth enforces a valid access token on protected routes.
//
// It reads "Authorization: Bearer <token>", verifies it with the access key,
// and stores the token payload in the request context. Anything else gets
// 401 and the chain stops.
//
// Chi applies middlewares in a chain: req → M1 → M2 → Handler → M2 → M1 → resp
func RequireAuth(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}
			user, err := tokens.VerifyAccessToken(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser returns a copy of ctx carrying the authenticated user. Handler
// tests use it to skip the token round trip.
func WithUser(ctx context.Context, user model.TokenPayload) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the authenticated user from the request context.
//
// Returns false when the request did not pass through RequireAuth.
//
//	user, ok := auth.UserFromContext(r.Context())
func UserFromContext(ctx context.Context) (model.TokenPayload, bool) {
	user, ok := ctx.Value(userKey).(model.TokenPayload)
	return user, ok && user.ID != ""
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// unauthorized writes the standard "fail" envelope. The handler package owns
// the general response helpers but imports this package, so the body is
// written here directly.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "fail",
		"message": msgMissingAuthentication,
	})
}
