package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/errors"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionUsecase resolves a single known token.
type fakeSessionUsecase struct {
	usecase.SessionUsecase

	knownToken string
	knownID    uuid.UUID
	refreshed  string
	started    int
}

func (f *fakeSessionUsecase) ResolveSession(_ context.Context, token string) (*usecase.ResolvedSession, error) {
	if token == f.knownToken {
		return &usecase.ResolvedSession{SessionID: f.knownID, RefreshedToken: f.refreshed}, nil
	}

	return nil, errors.WithStack(domainerrors.ErrInvalidSessionToken)
}

func (f *fakeSessionUsecase) StartSession(_ context.Context) (*usecase.StartedSession, error) {
	f.started++

	return &usecase.StartedSession{
		Session: &entity.Session{ID: uuid.New()},
		Token:   "fresh-token",
	}, nil
}

func runSessionMiddleware(t *testing.T, uc usecase.SessionUsecase, token string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	m := newSessionMiddleware(uc, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(deliverycontext.HeaderXSessionToken, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen uuid.UUID
	err := m.Resolve(func(c echo.Context) error {
		id, ok := GetSessionID(c)
		require.True(t, ok)
		fromCtx, ok := deliverycontext.GetSessionIDFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, id, fromCtx)
		seen = id

		return nil
	})(c)
	require.NoError(t, err)

	return rec, seen
}

func TestSessionMiddleware_KnownToken(t *testing.T) {
	uc := &fakeSessionUsecase{knownToken: "known", knownID: uuid.New()}

	rec, seen := runSessionMiddleware(t, uc, "known")

	assert.Equal(t, uc.knownID, seen)
	assert.Empty(t, rec.Header().Get(deliverycontext.HeaderXSessionToken))
	assert.Zero(t, uc.started)
}

func TestSessionMiddleware_ReturnsRefreshedToken(t *testing.T) {
	uc := &fakeSessionUsecase{knownToken: "known", knownID: uuid.New(), refreshed: "slid-forward"}

	rec, seen := runSessionMiddleware(t, uc, "known")

	assert.Equal(t, uc.knownID, seen)
	assert.Equal(t, "slid-forward", rec.Header().Get(deliverycontext.HeaderXSessionToken))
	assert.Zero(t, uc.started)
}

func TestSessionMiddleware_StartsSessionWhenTokenMissingOrInvalid(t *testing.T) {
	for _, token := range []string{"", "forged"} {
		uc := &fakeSessionUsecase{knownToken: "known", knownID: uuid.New()}

		rec, seen := runSessionMiddleware(t, uc, token)

		assert.NotEqual(t, uc.knownID, seen)
		assert.Equal(t, "fresh-token", rec.Header().Get(deliverycontext.HeaderXSessionToken))
		assert.Equal(t, 1, uc.started)
	}
}

func TestSessionMiddleware_LimitsSessionCreationPerClient(t *testing.T) {
	uc := &fakeSessionUsecase{knownToken: "known", knownID: uuid.New()}
	m := newSessionMiddleware(uc, newKeyedLimiter(60, 2, time.Minute, newTestClock().Now), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	call := func(token string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set(deliverycontext.HeaderXSessionToken, token)
		}

		return m.Resolve(func(echo.Context) error { return nil })(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call(""))
	require.NoError(t, call("forged"))
	err := call("")

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))
	assert.Equal(t, 2, uc.started)
	assert.NoError(t, call("known"), "resolving an existing session is never limited")
}
