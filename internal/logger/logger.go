package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Logger emits structured JSON log entries with service, hostname, action
// and request_id attributes on every record.
type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New creates a logger for the named service.
func New(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// GenerateRequestID returns a fresh request correlation ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) log(level slog.Level, action, requestID, message string, err error, fields map[string]interface{}) {
	attrs := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
	for key, value := range fields {
		attrs = append(attrs, slog.Any(key, value))
	}
	if err != nil {
		attrs = append(attrs, slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		))
	}
	l.handler.LogAttrs(context.TODO(), level, message, attrs...)
}

// Info logs an informational message
func (l *Logger) Info(action, requestID, message string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, action, requestID, message, nil, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(action, requestID, message string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, action, requestID, message, nil, fields)
}

// Error logs an error with its stack trace
func (l *Logger) Error(action, requestID, message string, err error, fields map[string]interface{}) {
	l.log(slog.LevelError, action, requestID, message, err, fields)
}
