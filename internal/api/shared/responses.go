package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ehatamm/project/internal/platform/logger"
	"github.com/ehatamm/project/internal/redact"
)

// ProblemContentType is the media type of problem responses (RFC 7807).
const ProblemContentType = "application/problem+json"

// Problem is the body written for every failed request.
type Problem struct {
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Status      int               `json:"status"`
	Detail      string            `json:"detail"`
	Path        string            `json:"path"`
	Timestamp   string            `json:"timestamp"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Now is the clock used for problem timestamps. Tests may replace it.
var Now = time.Now

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, r, "application/json", status, data)
}

// RespondWithProblem writes p as application/problem+json and logs the
// underlying error. Path and Timestamp are filled in from the request when
// empty. err never reaches the response body; it is redacted and logged.
//
// Log level strategy:
// - 5xx errors: ERROR level
// - everything else: DEBUG level
func RespondWithProblem(w http.ResponseWriter, r *http.Request, p Problem, err error) {
	if p.Path == "" {
		p.Path = r.URL.Path
	}
	if p.Timestamp == "" {
		p.Timestamp = Now().UTC().Format(time.RFC3339)
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", p.Status),
		slog.String("problem_type", p.Type),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if p.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeJSON(w, r, ProblemContentType, p.Status, p)
}

func writeJSON(w http.ResponseWriter, r *http.Request, contentType string, status int, data interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}
