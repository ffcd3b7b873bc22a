package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/forum-api/internal/auth"
)

// ThreadHandler serves thread creation and the thread detail view.
type ThreadHandler struct {
	threads ThreadService
	logger  *slog.Logger
}

func NewThreadHandler(threads ThreadService, logger *slog.Logger) *ThreadHandler {
	return &ThreadHandler{threads: threads, logger: logger}
}

// HandleAddThread creates a thread owned by the authenticated user.
//
// HTTP: POST /threads (Bearer)
// REQUEST BODY: {"title": "...", "body": "..."}
func (h *ThreadHandler) HandleAddThread(w http.ResponseWriter, r *http.Request) {
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

	thread, err := h.threads.AddThread(r.Context(), p, user.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedThread": thread})
}

// HandleGetThread returns a thread with its comments, replies and like counts.
//
// HTTP: GET /threads/{threadId}
//
// URL PARAMETERS:
// chi.URLParam reads the {threadId} segment matched by the router.
func (h *ThreadHandler) HandleGetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.threads.GetThread(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"thread": thread})
}
