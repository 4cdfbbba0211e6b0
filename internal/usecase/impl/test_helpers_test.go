package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vora/config"
	"vora/internal/domain/entity"
	"vora/internal/domain/repository"
	"vora/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storefront: &config.StorefrontConfig{
			ShippingFee:     15_000,
			ReferencePrefix: "VORA",
			TrackingDelay:   20 * time.Millisecond,
			HomeHighlights:  6,
			RelatedLimit:    3,
		},
	}
}

// storeFixtures holds the in-memory stores shared by the use case tests.
type storeFixtures struct {
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
}

func newStoreFixtures() storeFixtures {
	return storeFixtures{
		sessionRepo: memory.NewSessionRepository(),
		catalogRepo: memory.NewCatalogRepository(memory.SeedProducts()),
	}
}

// newSession creates an anonymous session and returns its ID.
func (f storeFixtures) newSession(t *testing.T) uuid.UUID {
	t.Helper()

	session, err := f.sessionRepo.Create(context.Background())
	require.NoError(t, err)

	return session.ID
}

// signIn attaches an identity of the given kind directly to the session.
func (f storeFixtures) signIn(t *testing.T, sessionID uuid.UUID, accountType entity.AccountType) *entity.Identity {
	t.Helper()

	identity := &entity.Identity{
		ID:           uuid.NewString(),
		Email:        "alex@example.com",
		Name:         "Alex Morgan",
		Type:         accountType,
		BusinessName: "Maison Morgan",
	}
	if accountType != entity.AccountBusiness {
		identity.BusinessName = ""
	}

	err := f.sessionRepo.Execute(context.Background(), sessionID, func(session *entity.Session) error {
		session.Identity = identity
		return nil
	})
	require.NoError(t, err)

	return identity
}

// mutate applies fn to the stored session.
func (f storeFixtures) mutate(t *testing.T, sessionID uuid.UUID, fn func(session *entity.Session)) {
	t.Helper()

	err := f.sessionRepo.Execute(context.Background(), sessionID, func(session *entity.Session) error {
		fn(session)
		return nil
	})
	require.NoError(t, err)
}

// snapshot returns the stored session.
func (f storeFixtures) snapshot(t *testing.T, sessionID uuid.UUID) *entity.Session {
	t.Helper()

	session, err := f.sessionRepo.Find(context.Background(), sessionID)
	require.NoError(t, err)

	return session
}

// product returns a seeded catalog product.
func (f storeFixtures) product(t *testing.T, id string) entity.Product {
	t.Helper()

	p, err := f.catalogRepo.FindByID(context.Background(), id)
	require.NoError(t, err)

	return *p
}
