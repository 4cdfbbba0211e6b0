package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CartUsecase manages the visitor's cart.
// Every method returns the cart as it stands after the operation.
type CartUsecase interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error)

	// AddItem resolves productID from the catalog and adds one unit.
	AddItem(ctx context.Context, sessionID uuid.UUID, productID string) (*CartView, error)

	// UpdateQuantity adds delta to a line; a line reaching zero is removed.
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, productID string, delta int) (*CartView, error)

	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) (*CartView, error)

	// Clear empties the cart and resets the checkout session.
	Clear(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}
