package usecase

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/google/uuid"
)

// HomeSection is the landing page content.
type HomeSection struct {
	Highlights []ProductView             `json:"highlights"`
	Showcase   []entity.CategoryShowcase `json:"showcase"`
}

// ShopSection is the filtered catalog listing.
type ShopSection struct {
	Categories []entity.Category `json:"categories"`
	Category   entity.Category   `json:"category"`
	Search     string            `json:"search"`
	Products   []ProductView     `json:"products"`
}

// ProductDetailSection is the inspected product with its related pieces.
type ProductDetailSection struct {
	Product ProductView   `json:"product"`
	Related []ProductView `json:"related"`
}

// TrackingSection names the reference whose timeline the client should look up.
type TrackingSection struct {
	Reference string `json:"reference"`
}

// PageView is the full projection a client renders. Exactly one page section is set.
type PageView struct {
	Page      entity.Page      `json:"page"`
	View      entity.ViewState `json:"view"`
	Identity  *entity.Identity `json:"identity"`
	CartCount int              `json:"cart_count"`
	Currency  entity.Currency  `json:"currency"`

	Home          *HomeSection          `json:"home,omitempty"`
	Shop          *ShopSection          `json:"shop,omitempty"`
	ProductDetail *ProductDetailSection `json:"product_detail,omitempty"`
	Checkout      *CheckoutView         `json:"checkout,omitempty"`
	Tracking      *TrackingSection      `json:"tracking,omitempty"`
	Dashboard     *DashboardView        `json:"dashboard,omitempty"`

	// CartDrawer is set while the cart drawer overlay is open.
	CartDrawer *CartView `json:"cart_drawer,omitempty"`
}

// StorefrontUsecase projects a session into the page a client renders.
type StorefrontUsecase interface {
	// Project is read-only: it never mutates the session.
	Project(ctx context.Context, sessionID uuid.UUID) (*PageView, error)
}
