package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vora/internal/domain/entity"
	"vora/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestSessionRepository() (*sessionRepository, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 12, 24, 10, 20, 0, 0, time.UTC)}

	return newSessionRepository(clock.Now), clock
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository()

	session, err := repo.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Nil(t, session.Identity)
	assert.True(t, session.Cart.IsEmpty())
	assert.Equal(t, entity.PageHome, session.View.Page)

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)

	_, err = repo.Find(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_ExecuteCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestSessionRepository()
	session, err := repo.Create(ctx)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	err = repo.Execute(ctx, session.ID, func(s *entity.Session) error {
		s.Cart.Add(entity.Product{ID: "w1", Price: 12_500_000})
		s.View = s.View.Navigate(entity.PageShop)
		return nil
	})
	require.NoError(t, err)

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Cart.ItemCount())
	assert.Equal(t, entity.PageShop, found.View.Page)
	assert.Equal(t, clock.Now(), found.UpdatedAt)
}

func TestSessionRepository_ExecuteDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository()
	session, err := repo.Create(ctx)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.Execute(ctx, session.ID, func(s *entity.Session) error {
		s.Cart.Add(entity.Product{ID: "w1", Price: 1})
		s.Identity = &entity.Identity{ID: "x", Type: entity.AccountBusiness}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, found.Cart.IsEmpty())
	assert.Nil(t, found.Identity)
}

func TestSessionRepository_ExecuteDiscardsOnPanic(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository()
	session, err := repo.Create(ctx)
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = repo.Execute(ctx, session.ID, func(s *entity.Session) error {
			s.Cart.Add(entity.Product{ID: "w1", Price: 1})
			panic("renderer bug")
		})
	})

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, found.Cart.IsEmpty())

	// The session lock was released.
	require.NoError(t, repo.Execute(ctx, session.ID, func(*entity.Session) error { return nil }))
}

func TestSessionRepository_ExecuteUnknownSession(t *testing.T) {
	repo, _ := newTestSessionRepository()

	err := repo.Execute(context.Background(), uuid.New(), func(*entity.Session) error { return nil })

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_ExecuteCancelledContext(t *testing.T) {
	repo, _ := newTestSessionRepository()
	session, err := repo.Create(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err = repo.Execute(ctx, session.ID, func(*entity.Session) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSessionRepository_FindReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository()
	session, err := repo.Create(ctx)
	require.NoError(t, err)

	snapshot, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	snapshot.Cart.Add(entity.Product{ID: "w1"})

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, found.Cart.IsEmpty())
}

func TestSessionRepository_ExecuteSerialisesMutations(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository()
	session, err := repo.Create(ctx)
	require.NoError(t, err)

	product := entity.Product{ID: "j1", Price: 15_000_000}

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Execute(ctx, session.ID, func(s *entity.Session) error {
				s.Cart.Add(product)
				return nil
			})
		}()
	}
	wg.Wait()

	found, err := repo.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, found.Cart.Quantity("j1"))
}

func TestSessionRepository_PurgeIdle(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestSessionRepository()

	stale, err := repo.Create(ctx)
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	fresh, err := repo.Create(ctx)
	require.NoError(t, err)

	removed, err := repo.PurgeIdle(ctx, clock.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Find(ctx, stale.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = repo.Find(ctx, fresh.ID)
	assert.NoError(t, err)
}
