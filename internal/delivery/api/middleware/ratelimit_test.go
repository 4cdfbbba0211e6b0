package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "vora/internal/delivery/context"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)}
}

func TestKeyedLimiter_BurstPerKey(t *testing.T) {
	clock := newTestClock()
	l := newKeyedLimiter(60, 2, time.Minute, clock.Now)

	first, second := uuid.New().String(), uuid.New().String()

	assert.True(t, l.allow(first))
	assert.True(t, l.allow(first))
	assert.False(t, l.allow(first))
	assert.True(t, l.allow(second), "keys do not share a budget")

	clock.now = clock.now.Add(time.Second)
	assert.True(t, l.allow(first), "one token refills per second at 60 rpm")
}

func TestKeyedLimiter_EvictsIdleBuckets(t *testing.T) {
	clock := newTestClock()
	l := newKeyedLimiter(60, 1, time.Minute, clock.Now)

	l.allow("a")
	l.allow("b")
	require.Equal(t, 2, l.size())

	clock.now = clock.now.Add(2 * time.Minute)
	l.allow("c")

	assert.Equal(t, 1, l.size())
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	m := &RateLimitMiddleware{limiter: newKeyedLimiter(60, 1, time.Minute, newTestClock().Now)}
	e := echo.New()
	sessionID := uuid.New()

	handler := m.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	call := func() error {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		deliverycontext.SetSessionID(c, sessionID)
		return handler(c)
	}

	require.NoError(t, call())
	err := call()
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))
}
