package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeySessionID is the key for storing the visitor session ID.
	KeySessionID ContextKey = "session_id"

	// HeaderXSessionToken carries the visitor session token in both directions.
	HeaderXSessionToken = "X-Session-Token"
)

// SetSessionID stores the resolved session ID in echo.Context.
func SetSessionID(c echo.Context, sessionID uuid.UUID) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID returns the session ID resolved for this request.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	sessionID, ok := c.Get(string(KeySessionID)).(uuid.UUID)
	return sessionID, ok && sessionID != uuid.Nil
}

// WithSessionID returns a new context with the session ID.
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeySessionID, sessionID)
}

// GetSessionIDFromContext extracts the session ID from standard context.Context.
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sessionID, ok := ctx.Value(KeySessionID).(uuid.UUID)
	return sessionID, ok
}
