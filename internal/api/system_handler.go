package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ehatamm/project/internal/api/shared"
	"github.com/ehatamm/project/internal/platform/logger"
	"github.com/ehatamm/project/internal/redact"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthTimeout bounds the dependency ping made by the health check.
const HealthTimeout = 2 * time.Second

// SystemHandler serves the operational endpoints: health and service info.
type SystemHandler struct {
	pinger Pinger
	info   InfoResponse
	logger *slog.Logger
}

// NewSystemHandler creates a SystemHandler. pinger may be nil, in which case
// the health check always succeeds.
func NewSystemHandler(pinger Pinger, info InfoResponse, logger *slog.Logger) *SystemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{
		pinger: pinger,
		info:   info,
		logger: logger.With(slog.String("component", "system_handler")),
	}
}

// Health handles GET /health. It answers 200 "OK" when the store responds to
// a ping and 503 otherwise.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), HealthTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			log.Warn("health check failed", slog.String("error", redact.Error(err)))
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("Service Unavailable")); err != nil {
				log.Error("failed to write health check response", slog.String("error", err.Error()))
			}
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Error("failed to write health check response", slog.String("error", err.Error()))
	}
}

// Info handles GET /api/info.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.info)
}
