package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/forum-api/internal/auth"
)

type CommentHandler struct {
	comments CommentService
	logger   *slog.Logger
}

func NewCommentHandler(comments CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

// HandleAddComment handles POST /threads/{threadId}/comments (Bearer).
func (h *CommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errMissingUser)
		return
	}

	p, err := decodePayload(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	comment, err := h.comments.AddComment(r.Context(), p, chi.URLParam(r, "threadId"), user.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": comment})
}

// HandleDeleteComment handles DELETE /threads/{threadId}/comments/{commentId} (Bearer).
func (h *CommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errMissingUser)
		return
	}

	err := h.comments.DeleteComment(r.Context(),
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
