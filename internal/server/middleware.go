package server

import (
	"context"
	"net/http"
	"time"

	"restaurant-pos/internal/logger"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// requestIDFrom returns the request id assigned by the logging middleware.
func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// responseWriter captures the status code for the access log.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// requestLogger assigns a request id and logs every request with its
// outcome and duration.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := logger.GenerateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rw, r.WithContext(ctx))

		h.logger.Info("http_request", requestID, "Handled request", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
