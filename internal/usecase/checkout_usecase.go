package usecase

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase drives the three-step checkout.
type CheckoutUsecase interface {
	// Begin closes the cart drawer, opens the checkout page and starts a fresh checkout.
	Begin(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error)

	GetCheckout(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error)

	// SubmitShipping moves from shipping to payment.
	SubmitShipping(ctx context.Context, sessionID uuid.UUID, details entity.ShippingDetails) (*CheckoutView, error)

	// Back returns from payment to shipping, keeping the submitted details.
	Back(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error)

	// Pay completes the order, issues its reference and clears the cart.
	Pay(ctx context.Context, sessionID uuid.UUID) (*CheckoutView, error)
}
