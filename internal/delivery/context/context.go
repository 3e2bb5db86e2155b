// Package context carries per-request values (request ID, request-scoped
// logger, authenticated identity) across the delivery and usecase layers.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"pantry/internal/domain/entity"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing the request ID.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyIdentity is the key for storing the authenticated account identity.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for the request ID.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context carrying the request ID, for layers
// below delivery that only see a context.Context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a new context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from the context.
// If none was attached, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the authenticated identity from echo.Context.
// Returns nil when the request is unauthenticated.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity
}
