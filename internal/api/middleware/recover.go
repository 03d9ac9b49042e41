package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ehatamm/project/internal/platform/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ErrorResponder writes an error response for err.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// NewRecoverer returns middleware that turns a panic in a handler into an
// error passed to respond, so the client still gets a well-formed response.
// When the handler had already started its response, the panic is only
// logged. http.ErrAbortHandler is re-panicked as net/http expects.
func NewRecoverer(respond ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// ALLOW-PANIC: net/http handles this sentinel itself
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				log := logger.FromContextOrDefault(r.Context(), slog.Default())
				log.Error("recovered from panic",
					slog.String("error", err.Error()),
					slog.String("stack", string(debug.Stack())))

				if status := ww.Status(); status != 0 {
					log.Warn("response already started, panic not reported to client",
						slog.Int("status", status))
					return
				}

				respond(ww, r, errors.Join(errPanic, err))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

var errPanic = errors.New("handler panicked")
