// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vora/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a product ID is already listed.
	ErrDuplicateProduct = errors.New("product already exists")
)

// CatalogRepository stores the sellable products.
// Listings come back in insertion order.
type CatalogRepository interface {
	// List returns every product.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindBySeller retrieves all products listed by a seller.
	FindBySeller(ctx context.Context, sellerID string) ([]entity.Product, error)

	// Add appends a product to the catalog.
	Add(ctx context.Context, product entity.Product) error

	// Remove deletes a product, returning ErrProductNotFound if absent.
	Remove(ctx context.Context, id string) error
}
