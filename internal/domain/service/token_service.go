package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the tokens that correlate requests with a visitor session.
// Tokens identify a session; they do not authenticate a person.
type TokenService interface {
	// IssueSessionToken creates a signed token for the session.
	IssueSessionToken(sessionID uuid.UUID) (string, error)

	// ValidateSessionToken checks the token signature and expiry and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionTokenTTL returns how long issued tokens stay valid.
	SessionTokenTTL() time.Duration
}
