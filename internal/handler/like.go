package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/forum-api/internal/auth"
)

type LikeHandler struct {
	likes  LikeService
	logger *slog.Logger
}

func NewLikeHandler(likes LikeService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

// HandleLikeUnlike toggles the caller's like on a comment.
//
// HTTP: PUT /threads/{threadId}/comments/{commentId}/likes (Bearer)
// The request has no body; calling it twice returns to the original state.
func (h *LikeHandler) HandleLikeUnlike(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errMissingUser)
		return
	}

	err := h.likes.LikeUnlike(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		user.ID,
	)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// HandleLikeHistory lists the ids of comments the caller liked, newest first.
//
// HTTP: GET /users/me/likes (Bearer)
func (h *LikeHandler) HandleLikeHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errMissingUser)
		return
	}

	likes, err := h.likes.GetUserLikeHistory(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if likes == nil {
		likes = []string{}
	}

	writeSuccess(w, http.StatusOK, map[string]any{"likes": likes})
}
