package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dougbrunos/go-rest-apis/internal/api/shared"
	"github.com/dougbrunos/go-rest-apis/internal/platform/logger"
)

// NewTraceMiddleware returns a middleware that adds a trace ID to the
// request context and attaches a request-scoped logger carrying it.
// It should be applied early in the chain so all subsequent handlers see
// the trace ID.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			requestLog := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, requestLog)

			requestLog.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
