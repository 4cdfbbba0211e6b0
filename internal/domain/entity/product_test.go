package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catalogFixture() []Product {
	return []Product{
		{ID: "w1", Name: "Oyster Perpetual Royal", Description: "Ultimate statement in horological excellence.", Category: CategoryLuxuryWatches},
		{ID: "w2", Name: "Gold Chronograph Master", Description: "Performance meets 18k solid gold prestige.", Category: CategoryLuxuryWatches},
		{ID: "j2", Name: "18k Gold Link Chain", Description: "Hand-linked Italian gold of the highest purity.", Category: CategoryFineJewelry},
		{ID: "f3", Name: "Cashmere Wrap Coat", Description: "The ultimate in winter luxury.", Category: CategoryFemaleCollection},
	}
}

func TestFilterProducts_AllCollectionEqualsNoFilter(t *testing.T) {
	products := catalogFixture()

	assert.Equal(t,
		FilterProducts(products, ProductFilter{}),
		FilterProducts(products, ProductFilter{Category: CategoryAll}),
	)
	assert.Len(t, FilterProducts(products, ProductFilter{Category: CategoryAll}), len(products))
}

func TestFilterProducts(t *testing.T) {
	tests := []struct {
		name    string
		filter  ProductFilter
		wantIDs []string
	}{
		{"category only", ProductFilter{Category: CategoryLuxuryWatches}, []string{"w1", "w2"}},
		{"search matches name case-insensitively", ProductFilter{Search: "GOLD"}, []string{"w2", "j2"}},
		{"search matches description", ProductFilter{Search: "winter"}, []string{"f3"}},
		{"category and search are combined", ProductFilter{Category: CategoryFineJewelry, Search: "gold"}, []string{"j2"}},
		{"blank search is ignored", ProductFilter{Search: "   "}, []string{"w1", "w2", "j2", "f3"}},
		{"no match", ProductFilter{Search: "submarine"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(catalogFixture(), tt.filter)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRelatedProducts(t *testing.T) {
	products := catalogFixture()

	related := RelatedProducts(products, products[0], 3)

	assert.Len(t, related, 1)
	assert.Equal(t, "w2", related[0].ID)
	assert.Empty(t, RelatedProducts(products, products[3], 3))
}

func TestCategory(t *testing.T) {
	assert.False(t, CategoryAll.IsValid())
	assert.True(t, CategoryAll.IsFilter())
	assert.True(t, CategoryMaleCollection.IsValid())
	assert.False(t, Category("Shoes").IsFilter())
	assert.Equal(t, CategoryAll, Categories()[0])
}

func TestShowcase_CoversEveryProductCategory(t *testing.T) {
	tiles := Showcase()

	assert.Len(t, tiles, len(Categories())-1)
	for _, tile := range tiles {
		assert.True(t, tile.Category.IsValid(), tile.Category)
		assert.NotEmpty(t, tile.Tagline)
	}
}
