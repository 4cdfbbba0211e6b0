package impl

import (
	"context"
	"log/slog"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	"vora/internal/domain/repository"
	"vora/internal/domain/service"
	"vora/internal/usecase"

	"github.com/google/uuid"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	sessionRepo repository.SessionRepository
	references  service.ReferenceGenerator
	metrics     service.StorefrontMetrics
	shippingFee int64
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	sessionRepo repository.SessionRepository,
	references service.ReferenceGenerator,
	metrics service.StorefrontMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		sessionRepo: sessionRepo,
		references:  references,
		metrics:     metrics,
		shippingFee: cfg.Storefront.ShippingFee,
		logger:      logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin closes the cart drawer, opens the checkout page and starts a fresh checkout.
func (srv *checkoutService) Begin(ctx context.Context, sessionID uuid.UUID) (*usecase.CheckoutView, error) {
	return srv.step(ctx, sessionID, "failed to begin checkout", func(session *entity.Session) error {
		session.View = session.View.WithOverlay(entity.OverlayCart, false).Navigate(entity.PageCheckout)
		session.Checkout = entity.NewCheckoutSession()

		return nil
	})
}

// GetCheckout returns the current checkout state.
func (srv *checkoutService) GetCheckout(ctx context.Context, sessionID uuid.UUID) (*usecase.CheckoutView, error) {
	session, err := srv.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	return srv.view(session), nil
}

// SubmitShipping moves from shipping to payment.
func (srv *checkoutService) SubmitShipping(ctx context.Context, sessionID uuid.UUID, details entity.ShippingDetails) (*usecase.CheckoutView, error) {
	return srv.step(ctx, sessionID, "failed to submit shipping details", func(session *entity.Session) error {
		next, err := session.Checkout.SubmitShipping(session.Cart, details)
		if err != nil {
			return err
		}
		session.Checkout = next

		return nil
	})
}

// Back returns from payment to shipping.
func (srv *checkoutService) Back(ctx context.Context, sessionID uuid.UUID) (*usecase.CheckoutView, error) {
	return srv.step(ctx, sessionID, "failed to return to shipping", func(session *entity.Session) error {
		next, err := session.Checkout.Back()
		if err != nil {
			return err
		}
		session.Checkout = next

		return nil
	})
}

// Pay completes the order. The completion callback clears the cart.
func (srv *checkoutService) Pay(ctx context.Context, sessionID uuid.UUID) (*usecase.CheckoutView, error) {
	var total int64

	view, err := srv.step(ctx, sessionID, "failed to complete payment", func(session *entity.Session) error {
		next, err := session.Checkout.Pay(session.Cart, srv.references.Generate(), srv.shippingFee, func(string) {
			session.Cart.Clear()
		})
		if err != nil {
			return err
		}
		session.Checkout = next
		total = next.Paid.Total

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordCheckoutCompleted(total)
	srv.log(ctx).Info("Order completed",
		slog.String("session_id", sessionID.String()),
		slog.String("reference", view.Reference),
		slog.Int64("total", total),
	)

	return view, nil
}

func (srv *checkoutService) step(ctx context.Context, sessionID uuid.UUID, message string, fn func(session *entity.Session) error) (*usecase.CheckoutView, error) {
	var view *usecase.CheckoutView

	err := srv.sessionRepo.Execute(ctx, sessionID, func(session *entity.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		view = srv.view(session)

		return nil
	})
	if err != nil {
		return nil, toAppError(err, message)
	}

	return view, nil
}

func (srv *checkoutService) view(session *entity.Session) *usecase.CheckoutView {
	return usecase.NewCheckoutView(session.Checkout, session.Cart, session.View.Currency, srv.shippingFee)
}
