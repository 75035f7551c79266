package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation id. The mobile client may
// supply its own; otherwise the server mints one.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id, attaches a child logger
// carrying it to the request context, and echoes the id back in the
// response so client-side reports can be matched against server logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(requestLogger.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
