// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	// KeyRequestID holds the request correlation ID.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds a *slog.Logger already carrying request_id.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is read from the client and echoed on the response.
	HeaderXRequestID = echo.HeaderXRequestID
)

// valueOf reads a typed value stored under key.
func valueOf[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// echoValueOf reads a typed value stored on the echo context under key.
func echoValueOf[T any](c echo.Context, key ContextKey) (T, bool) {
	v, ok := c.Get(string(key)).(T)

	return v, ok
}

// GetRequestID returns the request ID set on the echo context, or "".
func GetRequestID(c echo.Context) string {
	id, _ := echoValueOf[string](c, KeyRequestID)

	return id
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, KeyRequestID)

	return id
}

// WithRequestID derives a context carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger derives a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
