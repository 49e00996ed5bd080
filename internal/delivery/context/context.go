// Package context carries request-scoped values between the delivery layer
// and the services: the request-scoped logger and the authenticated principal.
package context

import (
	"context"
	"log/slog"

	"restapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyPrincipal is the key for the authenticated user.
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal stores the authenticated user on the echo.Context.
func SetPrincipal(c echo.Context, user *entity.User) {
	c.Set(string(KeyPrincipal), user)
}

// GetPrincipal returns the user set by the authentication gate.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyPrincipal)).(*entity.User)

	return user, ok && user != nil
}
