package impl

import (
	"context"
	"log/slog"

	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	"vora/internal/domain/repository"
	"vora/internal/domain/service"
	"vora/internal/usecase"

	"github.com/google/uuid"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
	metrics     service.StorefrontMetrics
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	sessionRepo repository.SessionRepository,
	catalogRepo repository.CatalogRepository,
	metrics service.StorefrontMetrics,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the current cart.
func (srv *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*usecase.CartView, error) {
	session, err := srv.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	return usecase.NewCartView(session.Cart, session.View.Currency), nil
}

// AddItem adds one unit of a catalog product.
func (srv *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartView, error) {
	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, toAppError(err, "failed to find product")
	}

	view, err := srv.mutate(ctx, sessionID, func(cart *entity.Cart) {
		cart.Add(*product)
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordCartAddition(product.ID)
	srv.log(ctx).Debug("Added product to cart",
		slog.String("product_id", product.ID),
		slog.Int("item_count", view.ItemCount),
	)

	return view, nil
}

// UpdateQuantity adds delta to a line. Unknown products are ignored.
func (srv *cartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, productID string, delta int) (*usecase.CartView, error) {
	return srv.mutate(ctx, sessionID, func(cart *entity.Cart) {
		cart.UpdateQuantity(productID, delta)
	})
}

// RemoveItem deletes a line.
func (srv *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.CartView, error) {
	return srv.mutate(ctx, sessionID, func(cart *entity.Cart) {
		cart.Remove(productID)
	})
}

// Clear empties the cart and resets the checkout session.
func (srv *cartService) Clear(ctx context.Context, sessionID uuid.UUID) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		session.Cart.Clear()
		session.Checkout = entity.NewCheckoutSession()
		view = usecase.NewCartView(session.Cart, session.View.Currency)

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to clear cart")
	}

	return view, nil
}

func (srv *cartService) mutate(ctx context.Context, sessionID uuid.UUID, fn func(cart *entity.Cart)) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		fn(session.Cart)
		view = usecase.NewCartView(session.Cart, session.View.Currency)

		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to update cart")
	}

	return view, nil
}
