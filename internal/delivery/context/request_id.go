// Package context carries request-scoped values from the delivery layer into the engine.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey struct{ name string }

var (
	requestIDKey = contextKey{"request_id"}
	loggerKey    = contextKey{"logger"}
)

const (
	// EchoKeyRequestID stores the request ID in echo.Context.
	EchoKeyRequestID = "request_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo context, generating one when the
// request never went through the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(EchoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(EchoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" for contexts that did not originate from a request,
// e.g. background lookups.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
