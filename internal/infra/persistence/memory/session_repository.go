package memory

import (
	"context"
	"sync"
	"time"

	"vora/internal/domain/entity"
	"vora/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionEntry guards one visitor's state. Mutations of different sessions proceed in parallel.
type sessionEntry struct {
	mu      sync.Mutex
	session *entity.Session
}

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
	now      func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*sessionEntry),
		now:      now,
	}
}

// Create stores a new anonymous session.
func (repo *sessionRepository) Create(ctx context.Context) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	session := entity.NewSession(uuid.New(), repo.now())

	repo.mu.Lock()
	repo.sessions[session.ID] = &sessionEntry{session: session}
	repo.mu.Unlock()

	return session.Clone(), nil
}

// Find returns a snapshot of the session.
func (repo *sessionRepository) Find(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	entry, err := repo.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.session.Clone(), nil
}

// Execute runs fn against a working copy and commits it only when fn succeeds.
func (repo *sessionRepository) Execute(ctx context.Context, id uuid.UUID, fn func(session *entity.Session) error) error {
	entry, err := repo.entry(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	// A panicking callback leaves the stored session untouched; the lock is released by the defer.
	working := entry.session.Clone()
	if err := fn(working); err != nil {
		return err
	}

	working.UpdatedAt = repo.now()
	entry.session = working

	return nil
}

// PurgeIdle drops sessions not updated since idleSince and reports how many were removed.
func (repo *sessionRepository) PurgeIdle(_ context.Context, idleSince time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for id, entry := range repo.sessions {
		entry.mu.Lock()
		idle := entry.session.UpdatedAt.Before(idleSince)
		entry.mu.Unlock()

		if idle {
			delete(repo.sessions, id)
			removed++
		}
	}

	return removed, nil
}

func (repo *sessionRepository) entry(id uuid.UUID) (*sessionEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	entry, ok := repo.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return entry, nil
}
