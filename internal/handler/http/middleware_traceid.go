package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-waitroom/internal/utils"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	maxTraceIDLength = 128
)

// traceIDs issues time-ordered ids for requests that arrive without one.
var traceIDs = utils.NewUUIDGenerator("")

// withTraceID attaches the request's trace id to the request logger, the
// context and both response headers. The queue client sends X-Request-ID;
// X-Trace-ID is accepted as well.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(utils.WithTraceID(l.WithContext(r.Context()), traceID))

		w.Header().Set(traceIDHeader, traceID)
		w.Header().Set(requestIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// incomingTraceID returns the caller's id, or a new one when the caller sent
// none or an oversized value.
func incomingTraceID(r *http.Request) string {
	for _, header := range []string{requestIDHeader, traceIDHeader} {
		id := strings.TrimSpace(r.Header.Get(header))
		if id != "" && len(id) <= maxTraceIDLength {
			return id
		}
	}
	return traceIDs.Generate()
}
