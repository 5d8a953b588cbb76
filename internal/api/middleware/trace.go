package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/api/shared"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
)

// TraceHeader carries the trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// NewTraceMiddleware adds a trace ID and a request-scoped logger to the request context.
// It should be applied early in the middleware chain so that all subsequent
// handlers can log with the trace ID attached.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			attrs := []any{slog.String("trace_id", traceID)}
			if requestID := chimw.GetReqID(ctx); requestID != "" {
				attrs = append(attrs, slog.String("request_id", requestID))
			}
			log := base.With(attrs...)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
		})
	}
}
