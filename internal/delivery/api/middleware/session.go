package middleware

import (
	"log/slog"
	"time"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/errors"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware correlates requests with a visitor session.
// It identifies a session, it does not authenticate anyone.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	creations *keyedLimiter // Per client IP. Nil disables the limit.
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	var creations *keyedLimiter
	if cfg.Session.CreationsPerMinute > 0 && cfg.Session.CreationBurst > 0 {
		creations = newKeyedLimiter(cfg.Session.CreationsPerMinute, cfg.Session.CreationBurst, cfg.Session.CreationEviction, time.Now)
	}

	return newSessionMiddleware(sessionUC, creations, logger)
}

func newSessionMiddleware(sessionUC usecase.SessionUsecase, creations *keyedLimiter, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC, creations: creations, logger: logger}
}

// Resolve reads X-Session-Token. A missing, invalid or expired token starts a new
// anonymous session whose token is returned in the same header. A token past half
// its lifetime is replaced through the same header.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		token := c.Request().Header.Get(deliverycontext.HeaderXSessionToken)

		var sessionID uuid.UUID
		if token != "" {
			resolved, err := m.sessionUC.ResolveSession(ctx, token)
			if err == nil {
				sessionID = resolved.SessionID
				if resolved.RefreshedToken != "" {
					c.Response().Header().Set(deliverycontext.HeaderXSessionToken, resolved.RefreshedToken)
				}
			} else {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Session token rejected, starting a new session", slog.Any("error", err))
			}
		}

		if sessionID == uuid.Nil {
			if m.creations != nil && !m.creations.allow(c.RealIP()) {
				return errors.Wrap(domainerrors.ErrTooManyRequests, "session creation rate exceeded")
			}

			started, err := m.sessionUC.StartSession(ctx)
			if err != nil {
				return err
			}
			sessionID = started.Session.ID
			c.Response().Header().Set(deliverycontext.HeaderXSessionToken, started.Token)
		}

		deliverycontext.SetSessionID(c, sessionID)

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("session_id", sessionID.String()))
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetSessionID returns the session resolved by Resolve.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetSessionID(c)
}
