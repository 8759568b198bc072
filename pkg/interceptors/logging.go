package interceptors

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder captures the status code and response size written by the
// wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// NewLoggingMiddleware creates request logging middleware with response size
// tracking.
func NewLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logger.Info("request started", appendLoggerFields(r.Context(),
				"method", r.Method,
				"path", r.URL.Path,
				"peer", r.RemoteAddr,
			)...)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			if rec.status >= http.StatusInternalServerError {
				logger.Error("request failed", appendLoggerFields(r.Context(),
					"method", r.Method,
					"path", r.URL.Path,
					"status", rec.status,
					"duration", duration.String(),
					"duration_ms", duration.Milliseconds(),
					"response_size_bytes", rec.bytes,
				)...)
			} else {
				logger.Info("request completed", appendLoggerFields(r.Context(),
					"method", r.Method,
					"path", r.URL.Path,
					"status", rec.status,
					"duration", duration.String(),
					"duration_ms", duration.Milliseconds(),
					"response_size_bytes", rec.bytes,
				)...)
			}
		})
	}
}

func appendLoggerFields(ctx context.Context, base ...any) []any {
	if requestID, ok := RequestIDFromContext(ctx); ok && requestID != "" {
		base = append(base, "request_id", requestID)
	}
	return base
}
