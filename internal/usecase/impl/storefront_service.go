package impl

import (
	"context"

	"vora/config"
	"vora/internal/domain/entity"
	"vora/internal/domain/repository"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storefrontService implements the StorefrontUsecase interface.
type storefrontService struct {
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
	catalog     usecase.CatalogUsecase
	shippingFee int64
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(
	sessionRepo repository.SessionRepository,
	catalogRepo repository.CatalogRepository,
	catalog usecase.CatalogUsecase,
	cfg *config.Config,
) usecase.StorefrontUsecase {
	return &storefrontService{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		catalog:     catalog,
		shippingFee: cfg.Storefront.ShippingFee,
	}
}

// Project renders the session's current page from a snapshot.
// States that cannot be rendered are redirected in the projection only.
func (srv *storefrontService) Project(ctx context.Context, sessionID uuid.UUID) (*usecase.PageView, error) {
	session, err := srv.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	view := session.View.Normalize()
	if view.Page == entity.PageDashboard && !session.Identity.IsBusiness() {
		view = view.Navigate(entity.PageHome)
	}
	currency := view.Currency

	page := &usecase.PageView{
		Page:      view.Page,
		View:      view,
		Identity:  session.Identity,
		CartCount: session.Cart.ItemCount(),
		Currency:  currency,
	}

	switch view.Page {
	case entity.PageHome:
		highlights, err := srv.catalog.Highlights(ctx)
		if err != nil {
			return nil, err
		}
		page.Home = &usecase.HomeSection{
			Highlights: usecase.NewProductViews(highlights, currency),
			Showcase:   srv.catalog.Showcase(),
		}

	case entity.PageShop:
		products, err := srv.catalog.ListProducts(ctx, view.Filter())
		if err != nil {
			return nil, err
		}
		page.Shop = &usecase.ShopSection{
			Categories: srv.catalog.Categories(),
			Category:   view.Category,
			Search:     view.Search,
			Products:   usecase.NewProductViews(products, currency),
		}

	case entity.PageProductDetail:
		related, err := srv.catalog.RelatedProducts(ctx, *view.InspectedProduct)
		if err != nil {
			return nil, err
		}
		page.ProductDetail = &usecase.ProductDetailSection{
			Product: usecase.NewProductView(*view.InspectedProduct, currency),
			Related: usecase.NewProductViews(related, currency),
		}

	case entity.PageCheckout:
		page.Checkout = usecase.NewCheckoutView(session.Checkout, session.Cart, currency, srv.shippingFee)

	case entity.PageTracking:
		page.Tracking = &usecase.TrackingSection{Reference: view.TrackingReference}

	case entity.PageDashboard:
		listings, err := srv.catalogRepo.FindBySeller(ctx, session.Identity.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find listings")
		}
		page.Dashboard = usecase.NewDashboardView(session.Identity, listings, currency)
	}

	if view.CartDrawerOpen {
		page.CartDrawer = usecase.NewCartView(session.Cart, currency)
	}

	return page, nil
}
