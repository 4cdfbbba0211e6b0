package impl

import (
	"context"
	"testing"

	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService() (usecase.CatalogUsecase, storeFixtures) {
	stores := newStoreFixtures()

	return NewCatalogService(stores.catalogRepo, newTestConfig(), newDiscardLogger()), stores
}

func ids(products []entity.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}

	return result
}

func TestCatalogService_ListProducts(t *testing.T) {
	service, _ := createTestCatalogService()
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  entity.ProductFilter
		wantIDs []string
	}{
		{"male collection", entity.ProductFilter{Category: entity.CategoryMaleCollection}, []string{"m1"}},
		{"watches", entity.ProductFilter{Category: entity.CategoryLuxuryWatches}, []string{"w1", "w2", "w3", "w4"}},
		{"search across categories", entity.ProductFilter{Search: "silk"}, []string{"f2", "f6"}},
		{"search within category", entity.ProductFilter{Category: entity.CategoryFineJewelry, Search: "diamond"}, []string{"j1", "j3", "j4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := service.ListProducts(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(products))
		})
	}
}

func TestCatalogService_ListProducts_AllCollectionMatchesNoFilter(t *testing.T) {
	service, _ := createTestCatalogService()
	ctx := context.Background()

	all, err := service.ListProducts(ctx, entity.ProductFilter{Category: entity.CategoryAll})
	require.NoError(t, err)
	none, err := service.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)

	assert.Len(t, all, 16)
	assert.Equal(t, ids(none), ids(all))
}

func TestCatalogService_ListProducts_InvalidCategory(t *testing.T) {
	service, _ := createTestCatalogService()

	_, err := service.ListProducts(context.Background(), entity.ProductFilter{Category: "Handbags"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestCatalogService_GetProduct(t *testing.T) {
	service, _ := createTestCatalogService()
	ctx := context.Background()

	product, err := service.GetProduct(ctx, "f4")
	require.NoError(t, err)
	assert.Equal(t, "Midnight Lace Gown", product.Name)

	_, err = service.GetProduct(ctx, "zz")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_HighlightsAndRelated(t *testing.T) {
	service, stores := createTestCatalogService()
	ctx := context.Background()

	highlights, err := service.Highlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"w1", "w2", "w3", "w4", "j1", "j2"}, ids(highlights))

	related, err := service.RelatedProducts(ctx, stores.product(t, "f1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"f2", "f3", "f4"}, ids(related))

	related, err = service.RelatedProducts(ctx, stores.product(t, "m1"))
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestCatalogService_CategoriesAndShowcase(t *testing.T) {
	service, _ := createTestCatalogService()

	assert.Equal(t, entity.CategoryAll, service.Categories()[0])
	assert.Len(t, service.Showcase(), 4)
}
