package repository

import (
	"context"
	"time"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository holds visitor sessions.
type SessionRepository interface {
	// Create stores a new anonymous session.
	Create(ctx context.Context) (*entity.Session, error)

	// Find returns a snapshot of the session. Mutating the snapshot has no effect.
	Find(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Execute runs fn against a working copy of the session.
	// If fn returns an error the copy is discarded. Otherwise, it replaces the stored session.
	// Calls for the same session never interleave.
	Execute(ctx context.Context, id uuid.UUID, fn func(session *entity.Session) error) error

	// PurgeIdle drops sessions whose last mutation is older than idleSince.
	PurgeIdle(ctx context.Context, idleSince time.Time) (int, error)
}
