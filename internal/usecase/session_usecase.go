package usecase

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
)

// SignInInput is what the sign-in form submits. No credential is verified.
type SignInInput struct {
	Email            string             `json:"email"`
	Name             string             `json:"name"`
	AccountType      entity.AccountType `json:"account_type"`
	BusinessName     string             `json:"business_name"`
	BusinessCategory string             `json:"business_category"`
}

// StartedSession is a freshly created session and the token that refers to it.
type StartedSession struct {
	Session *entity.Session
	Token   string
}

// ResolvedSession is the live session a token refers to.
type ResolvedSession struct {
	SessionID uuid.UUID

	// RefreshedToken replaces the presented token once it has used half its lifetime. Empty otherwise.
	RefreshedToken string
}

// SessionUsecase defines the interface for visitor session and identity operations.
type SessionUsecase interface {
	// StartSession creates an anonymous session and issues its token.
	StartSession(ctx context.Context) (*StartedSession, error)

	// ResolveSession returns the live session a token refers to and marks it active.
	ResolveSession(ctx context.Context, token string) (*ResolvedSession, error)

	// GetSession returns a snapshot of the session.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// SignIn attaches a new identity, closes the auth modal and lands on the shop.
	SignIn(ctx context.Context, sessionID uuid.UUID, input SignInInput) (*entity.Identity, error)

	// SignOut drops the identity and returns to the home page.
	SignOut(ctx context.Context, sessionID uuid.UUID) error

	// PurgeIdleSessions drops sessions whose tokens can no longer be valid.
	PurgeIdleSessions(ctx context.Context) (int, error)
}
