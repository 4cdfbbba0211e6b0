// Package entity contains the core business objects of the storefront.
package entity

import "strings"

// Category is the collection a product is listed under.
type Category string

const (
	// CategoryAll is the "no filter" sentinel. It is never a product's category.
	CategoryAll Category = "All Collection"
	// CategoryLuxuryWatches lists heritage timepieces.
	CategoryLuxuryWatches Category = "Luxury Watches"
	// CategoryFineJewelry lists diamonds and precious metals.
	CategoryFineJewelry Category = "Fine Jewelry"
	// CategoryMaleCollection lists suits and menswear.
	CategoryMaleCollection Category = "Male Collection"
	// CategoryFemaleCollection lists couture and womenswear.
	CategoryFemaleCollection Category = "Female Collection"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a category a product can be listed under.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLuxuryWatches, CategoryFineJewelry, CategoryMaleCollection, CategoryFemaleCollection:
		return true
	default:
		return false
	}
}

// IsFilter reports whether c may be used as a catalog filter value.
func (c Category) IsFilter() bool {
	return c == CategoryAll || c.IsValid()
}

// Categories returns the filter tabs in display order, "All Collection" first.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryLuxuryWatches,
		CategoryFineJewelry,
		CategoryMaleCollection,
		CategoryFemaleCollection,
	}
}

// CategoryShowcase is a home page tile that opens the shop on one category.
type CategoryShowcase struct {
	Category Category `json:"category"`
	Tagline  string   `json:"tagline"`
	ImageURL string   `json:"image_url"`
}

// Showcase returns the home page category tiles in display order.
func Showcase() []CategoryShowcase {
	return []CategoryShowcase{
		{Category: CategoryLuxuryWatches, Tagline: "Heritage Timepieces", ImageURL: "https://images.unsplash.com/photo-1614164185128-e4ec99c436d7?auto=format&fit=crop&q=80&w=800"},
		{Category: CategoryFineJewelry, Tagline: "Diamonds & Precious Metals", ImageURL: "https://images.unsplash.com/photo-1599643478118-d02272596a42?auto=format&fit=crop&q=80&w=800"},
		{Category: CategoryMaleCollection, Tagline: "Luxury Suits & Wear", ImageURL: "https://images.unsplash.com/photo-1593032465175-481ac7f402a1?auto=format&fit=crop&q=80&w=600"},
		{Category: CategoryFemaleCollection, Tagline: "High-End Couture", ImageURL: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=600"},
	}
}

// Product is a sellable catalog item. Prices are whole units of the base currency.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"image_url"`
	SellerID    string   `json:"seller_id"`
	SellerName  string   `json:"seller_name"`
}

// ProductFilter narrows a catalog listing.
// A zero value, or Category == CategoryAll, matches every product.
type ProductFilter struct {
	Category Category
	Search   string
}

// Matches reports whether p satisfies both the category and the search condition.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

// FilterProducts returns the products matching f, preserving order.
func FilterProducts(products []Product, f ProductFilter) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}

	return result
}

// RelatedProducts returns up to limit products sharing p's category, excluding p itself.
func RelatedProducts(products []Product, p Product, limit int) []Product {
	result := make([]Product, 0, limit)
	for _, candidate := range products {
		if len(result) >= limit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			result = append(result, candidate)
		}
	}

	return result
}
