package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/repository"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(
	sessionRepo repository.SessionRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.NavigationUsecase {
	return &navigationService{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (srv *navigationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Navigate switches page. Entering checkout always starts a fresh checkout session.
func (srv *navigationService) Navigate(ctx context.Context, sessionID uuid.UUID, page entity.Page) (*entity.ViewState, error) {
	if !page.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPage, "page %q", page)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		if page == entity.PageDashboard {
			if err := authorizeBusiness(session.Identity); err != nil {
				srv.log(ctx).Info("Dashboard navigation refused", slog.String("session_id", sessionID.String()))
				return err
			}
		}
		if page == entity.PageCheckout {
			session.Checkout = entity.NewCheckoutSession()
		}

		session.View = session.View.Navigate(page)

		return nil
	})
}

// ViewProduct opens the detail page of a catalog product.
func (srv *navigationService) ViewProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ViewState, error) {
	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, toAppError(err, "failed to find product")
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.ViewProduct(*product)
		return nil
	})
}

// TrackOrder opens the tracking page for a trimmed, upper-cased reference.
func (srv *navigationService) TrackOrder(ctx context.Context, sessionID uuid.UUID, reference string) (*entity.ViewState, error) {
	reference = normalizeReference(reference)
	if reference == "" {
		return nil, errors.WithStack(domainerrors.ErrTrackingReferenceRequired)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.TrackOrder(reference)
		return nil
	})
}

// BrowseCategory selects a category and opens the shop.
func (srv *navigationService) BrowseCategory(ctx context.Context, sessionID uuid.UUID, category entity.Category) (*entity.ViewState, error) {
	if !category.IsFilter() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCategory, "category %q", category)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.WithCategory(category).Navigate(entity.PageShop)
		return nil
	})
}

// SetCategory changes the category filter without changing page.
func (srv *navigationService) SetCategory(ctx context.Context, sessionID uuid.UUID, category entity.Category) (*entity.ViewState, error) {
	if !category.IsFilter() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCategory, "category %q", category)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.WithCategory(category)
		return nil
	})
}

// SetSearch changes the free-text search without changing page.
func (srv *navigationService) SetSearch(ctx context.Context, sessionID uuid.UUID, query string) (*entity.ViewState, error) {
	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.WithSearch(query)
		return nil
	})
}

// SetCurrency changes the display currency.
func (srv *navigationService) SetCurrency(ctx context.Context, sessionID uuid.UUID, currency entity.Currency) (*entity.ViewState, error) {
	if !currency.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", currency)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.WithCurrency(currency)
		return nil
	})
}

// SetOverlay opens or closes an overlay.
func (srv *navigationService) SetOverlay(ctx context.Context, sessionID uuid.UUID, overlay entity.Overlay, open bool) (*entity.ViewState, error) {
	if !overlay.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidOverlay, "overlay %q", overlay)
	}

	return srv.transition(ctx, sessionID, func(session *entity.Session) error {
		session.View = session.View.WithOverlay(overlay, open)
		return nil
	})
}

func (srv *navigationService) transition(ctx context.Context, sessionID uuid.UUID, fn func(session *entity.Session) error) (*entity.ViewState, error) {
	var view entity.ViewState

	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		view = session.View

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to update view state")
	}

	return &view, nil
}

func normalizeReference(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}
