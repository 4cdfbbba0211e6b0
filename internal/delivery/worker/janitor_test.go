package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"vora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSessionUsecase struct {
	usecase.SessionUsecase

	purges atomic.Int32
	err    error
}

func (c *countingSessionUsecase) PurgeIdleSessions(context.Context) (int, error) {
	c.purges.Add(1)

	return 0, c.err
}

func TestSessionJanitor_PurgesUntilStopped(t *testing.T) {
	uc := &countingSessionUsecase{err: errors.New("boom")}
	j := newSessionJanitor(uc, 5*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	served := make(chan error, 1)
	go func() { served <- j.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return uc.purges.Load() >= 2 }, time.Second, time.Millisecond)

	require.NoError(t, j.stop(context.Background()))
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_StopsWithContext(t *testing.T) {
	uc := &countingSessionUsecase{}
	j := newSessionJanitor(uc, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, j.Serve(ctx))
	assert.Zero(t, uc.purges.Load())
}
