package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler reports whether the server can reach its database. Load
// balancers and orchestrators poll it.
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// HandleHealth handles GET /health.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, Response{Status: statusError, Message: "database tidak dapat dijangkau"})
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
