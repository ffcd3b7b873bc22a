package handler

import (
	"log/slog"
	"net/http"
)

// AuthHandler serves the /authentications resource: login (POST), access
// token refresh (PUT) and logout (DELETE). All three read the request body;
// none requires a bearer token.
type AuthHandler struct {
	auth   AuthService
	logger *slog.Logger
}

func NewAuthHandler(auth AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// HandleLogin issues an access and refresh token pair.
//
// HTTP: POST /authentications
// REQUEST BODY: {"username": "dicoding", "password": "secret"}
// RESPONSE: 201 {"status":"success","data":{"accessToken":...,"refreshToken":...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	tokens, err := h.auth.Login(r.Context(), p)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, tokens)
}

// HandleRefresh trades a refresh token for a new access token.
//
// HTTP: PUT /authentications
// REQUEST BODY: {"refreshToken": "..."}
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	access, err := h.auth.Refresh(r.Context(), p)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"accessToken": access})
}

// HandleLogout deletes a refresh token.
//
// HTTP: DELETE /authentications
// REQUEST BODY: {"refreshToken": "..."}
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.auth.Logout(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
