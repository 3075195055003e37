package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/httputil"
)

// Pinger is a backing store that can report its health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and the state backend's reachability
type HealthHandler struct {
	backend string
	pinger  Pinger
	logger  *slog.Logger
}

// NewHealthHandler creates a health handler. pinger may be nil for the
// in-memory backend.
func NewHealthHandler(backend string, pinger Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		pinger:  pinger,
		logger:  logger,
	}
}

// HealthCheck returns 200 when the state backend answers, 503 otherwise
// GET /health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", "backend", h.backend, "error", err)
			httputil.RespondErrorWithExtras(w, http.StatusServiceUnavailable, "state backend unavailable",
				map[string]interface{}{"state_backend": h.backend})
			return
		}
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":        "ok",
		"state_backend": h.backend,
	})
}
