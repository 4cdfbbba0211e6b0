package usecase

import (
	"context"

	"vora/internal/domain/entity"
)

// CatalogUsecase defines the read side of the product catalog.
type CatalogUsecase interface {
	// ListProducts returns the products matching filter in catalog order.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)

	// GetProduct retrieves one product.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// RelatedProducts returns other products of the same category.
	RelatedProducts(ctx context.Context, product entity.Product) ([]entity.Product, error)

	// Highlights returns the products featured on the home page.
	Highlights(ctx context.Context) ([]entity.Product, error)

	// Categories returns the filter tabs, "All Collection" first.
	Categories() []entity.Category

	// Showcase returns the category tiles shown on the home page.
	Showcase() []entity.CategoryShowcase
}
