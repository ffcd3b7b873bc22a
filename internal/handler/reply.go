package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/forum-api/internal/auth"
)

type ReplyHandler struct {
	replies ReplyService
	logger  *slog.Logger
}

func NewReplyHandler(replies ReplyService, logger *slog.Logger) *ReplyHandler {
	return &ReplyHandler{replies: replies, logger: logger}
}

// HandleAddReply handles POST /threads/{threadId}/comments/{commentId}/replies (Bearer).
func (h *ReplyHandler) HandleAddReply(w http.ResponseWriter, r *http.Request) {
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

	reply, err := h.replies.AddReply(r.Context(), p,
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		user.ID,
	)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedReply": reply})
}

// HandleDeleteReply handles
// DELETE /threads/{threadId}/comments/{commentId}/replies/{replyId} (Bearer).
func (h *ReplyHandler) HandleDeleteReply(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errMissingUser)
		return
	}

	err := h.replies.DeleteReply(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.ID,
	)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
