package handler

import (
	"log/slog"
	"net/http"
)

// UserHandler serves user registration.
type UserHandler struct {
	users  UserService
	logger *slog.Logger
}

func NewUserHandler(users UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// HandleAddUser registers a user.
//
// HTTP: POST /users
// REQUEST BODY: {"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}
// RESPONSE: 201 {"status":"success","data":{"addedUser":{"id":...,"username":...,"fullname":...}}}
func (h *UserHandler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.users.AddUser(r.Context(), p)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedUser": user})
}
