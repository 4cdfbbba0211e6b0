// Package worker runs background jobs that share the application lifecycle.
package worker

import (
	"context"
	"log/slog"
	"time"

	"vora/config"
	"vora/internal/delivery"
	"vora/internal/usecase"

	"go.uber.org/fx"
)

type sessionJanitor struct {
	sessionUC usecase.SessionUsecase
	interval  time.Duration
	logger    *slog.Logger
	done      chan struct{}
}

// JanitorParams holds dependencies for the session janitor
type JanitorParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewSessionJanitor creates a delivery that periodically drops idle sessions.
func NewSessionJanitor(params JanitorParams) (delivery.Delivery, error) {
	j := newSessionJanitor(params.SessionUC, params.Cfg.Session.PurgeInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j, nil
}

func newSessionJanitor(sessionUC usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionJanitor {
	return &sessionJanitor{
		sessionUC: sessionUC,
		interval:  interval,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Serve purges idle sessions on every tick until ctx ends or the application stops.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	if _, err := j.sessionUC.PurgeIdleSessions(ctx); err != nil {
		j.logger.Error("Failed to purge idle sessions", slog.Any("error", err))
	}
}

func (j *sessionJanitor) stop(context.Context) error {
	j.logger.Info("Stopping session janitor")
	close(j.done)

	return nil
}
