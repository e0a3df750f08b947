package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

// Logging returns middleware that logs the start (debug) and completion of
// each request.
//
// The request and correlation IDs are attached to the context with
// logging.WithAttrs, so every record logged downstream through a logger built
// by logging.New carries them, including records from the application service
// and the store client. The logger is also stored with logging.WithLogger for
// handlers that have no logger of their own.
//
// Completion is logged at error level for 5xx responses and info otherwise,
// with method, path, route pattern, status code, bytes written, and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := logging.WithAttrs(r.Context(),
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx = logging.WithLogger(ctx, logger)

			if logger.Enabled(ctx, slog.LevelDebug) {
				args := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				for _, a := range RedactHeaders(r.Header) {
					args = append(args, a)
				}
				logger.DebugContext(ctx, "request started", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
