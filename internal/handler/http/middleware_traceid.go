package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/utils"
)

// withTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and attaches a logger carrying it to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
