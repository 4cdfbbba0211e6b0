// Package memory contains the in-process implementation of the persistence layer.
package memory

import (
	"context"
	"slices"
	"sync"

	"vora/internal/domain/entity"
	"vora/internal/domain/repository"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewCatalogRepository is the constructor for catalogRepository.
// The catalog starts with a copy of seed in the given order.
func NewCatalogRepository(seed []entity.Product) repository.CatalogRepository {
	return &catalogRepository{
		products: slices.Clone(seed),
	}
}

// List returns every product in insertion order.
func (repo *catalogRepository) List(_ context.Context) ([]entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return slices.Clone(repo.products), nil
}

// FindByID retrieves a product by its unique ID.
func (repo *catalogRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	i := repo.indexOf(id)
	if i < 0 {
		return nil, repository.ErrProductNotFound
	}

	product := repo.products[i]

	return &product, nil
}

// FindBySeller retrieves all products listed by a seller, in insertion order.
func (repo *catalogRepository) FindBySeller(_ context.Context, sellerID string) ([]entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	products := make([]entity.Product, 0)
	for _, p := range repo.products {
		if p.SellerID == sellerID {
			products = append(products, p)
		}
	}

	return products, nil
}

// Add appends a product to the end of the catalog.
func (repo *catalogRepository) Add(_ context.Context, product entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.indexOf(product.ID) >= 0 {
		return repository.ErrDuplicateProduct
	}

	repo.products = append(repo.products, product)

	return nil
}

// Remove deletes a product. Unknown IDs leave the catalog unchanged.
func (repo *catalogRepository) Remove(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return repository.ErrProductNotFound
	}

	repo.products = slices.Delete(repo.products, i, i+1)

	return nil
}

func (repo *catalogRepository) indexOf(id string) int {
	return slices.IndexFunc(repo.products, func(p entity.Product) bool {
		return p.ID == id
	})
}
