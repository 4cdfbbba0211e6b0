package usecase

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
)

// NavigationUsecase applies navigation intents to a session's view state.
// Every method returns the resulting view state.
type NavigationUsecase interface {
	// Navigate switches page. The dashboard is refused without a business identity.
	Navigate(ctx context.Context, sessionID uuid.UUID, page entity.Page) (*entity.ViewState, error)

	// ViewProduct opens the detail page of a catalog product.
	ViewProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ViewState, error)

	// TrackOrder opens the tracking page for a reference.
	TrackOrder(ctx context.Context, sessionID uuid.UUID, reference string) (*entity.ViewState, error)

	// BrowseCategory selects a category and opens the shop.
	BrowseCategory(ctx context.Context, sessionID uuid.UUID, category entity.Category) (*entity.ViewState, error)

	SetCategory(ctx context.Context, sessionID uuid.UUID, category entity.Category) (*entity.ViewState, error)
	SetSearch(ctx context.Context, sessionID uuid.UUID, query string) (*entity.ViewState, error)
	SetCurrency(ctx context.Context, sessionID uuid.UUID, currency entity.Currency) (*entity.ViewState, error)

	// SetOverlay opens or closes the auth modal or the cart drawer.
	SetOverlay(ctx context.Context, sessionID uuid.UUID, overlay entity.Overlay, open bool) (*entity.ViewState, error)
}
