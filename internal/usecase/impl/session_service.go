// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/repository"
	"vora/internal/domain/service"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession creates an anonymous session and issues its token.
func (srv *sessionService) StartSession(ctx context.Context) (*usecase.StartedSession, error) {
	session, err := srv.sessionRepo.Create(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokenService.IssueSessionToken(session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Started visitor session", slog.String("session_id", session.ID.String()))

	return &usecase.StartedSession{Session: session, Token: token}, nil
}

// ResolveSession validates the token, marks its session active and slides the token
// forward once half of its lifetime has passed.
func (srv *sessionService) ResolveSession(ctx context.Context, token string) (*usecase.ResolvedSession, error) {
	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidSessionToken.WithDetails(err.Error()), "failed to validate session token")
	}

	// An empty mutation stamps the session as recently used so the janitor keeps it.
	if err := srv.sessionRepo.Execute(ctx, claims.SessionID, func(*entity.Session) error { return nil }); err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	resolved := &usecase.ResolvedSession{SessionID: claims.SessionID}
	if !srv.needsRefresh(claims) {
		return resolved, nil
	}

	refreshed, err := srv.tokenService.IssueSessionToken(claims.SessionID)
	if err != nil {
		// The presented token is still valid, so the request proceeds without a new one.
		srv.log(ctx).Warn("Failed to refresh session token", slog.Any("error", err), slog.String("session_id", claims.SessionID.String()))

		return resolved, nil
	}
	resolved.RefreshedToken = refreshed

	return resolved, nil
}

func (srv *sessionService) needsRefresh(claims *service.SessionClaims) bool {
	if claims.IssuedAt == nil {
		return true
	}

	return srv.now().Sub(claims.IssuedAt.Time) >= srv.tokenService.SessionTokenTTL()/2
}

// GetSession returns a snapshot of the session.
func (srv *sessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	return session, nil
}

// SignIn wraps whatever the visitor typed into a new identity with a fresh random ID.
func (srv *sessionService) SignIn(ctx context.Context, sessionID uuid.UUID, input usecase.SignInInput) (*entity.Identity, error) {
	accountType := input.AccountType
	if accountType == "" {
		accountType = entity.AccountPersonal
	}
	if !accountType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidAccountType, "account type %q", input.AccountType)
	}

	identity := &entity.Identity{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(input.Email),
		Name:  strings.TrimSpace(input.Name),
		Type:  accountType,
	}
	if identity.Name == "" {
		identity.Name = entity.DefaultDisplayName
	}
	if accountType == entity.AccountBusiness {
		identity.BusinessName = strings.TrimSpace(input.BusinessName)
		identity.BusinessCategory = strings.TrimSpace(input.BusinessCategory)
	}

	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		session.Identity = identity
		session.View = session.View.WithOverlay(entity.OverlayAuth, false).Navigate(entity.PageShop)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign in", slog.Any("error", err), slog.String("session_id", sessionID.String()))

		return nil, toAppError(err, "failed to sign in")
	}

	srv.log(ctx).Info("Visitor signed in",
		slog.String("session_id", sessionID.String()),
		slog.String("identity_id", identity.ID),
		slog.String("account_type", identity.Type.String()),
	)

	return identity, nil
}

// SignOut clears the identity, the inspected product and returns home.
func (srv *sessionService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		session.Identity = nil
		session.View = session.View.Navigate(entity.PageHome)

		return nil
	})
	if err != nil {
		return toAppError(err, "failed to sign out")
	}

	srv.log(ctx).Info("Visitor signed out", slog.String("session_id", sessionID.String()))

	return nil
}

// PurgeIdleSessions drops sessions idle for longer than a token can live.
func (srv *sessionService) PurgeIdleSessions(ctx context.Context) (int, error) {
	idleSince := srv.now().Add(-srv.tokenService.SessionTokenTTL())

	removed, err := srv.sessionRepo.PurgeIdle(ctx, idleSince)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge idle sessions")
	}
	if removed > 0 {
		srv.log(ctx).Info("Purged idle sessions", slog.Int("count", removed))
	}

	return removed, nil
}
