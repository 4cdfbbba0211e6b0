// Package usecase contains the application-specific business rules.
package usecase

import "vora/internal/domain/entity"

// ProductView is a product with its price formatted in the display currency.
type ProductView struct {
	entity.Product
	DisplayPrice string `json:"display_price"`
}

// NewProductView formats p for currency.
func NewProductView(p entity.Product, currency entity.Currency) ProductView {
	return ProductView{
		Product:      p,
		DisplayPrice: currency.Format(p.Price),
	}
}

// NewProductViews formats every product for currency.
func NewProductViews(products []entity.Product, currency entity.Currency) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p, currency))
	}

	return views
}

// CartLineView is one cart line with formatted amounts.
type CartLineView struct {
	Product          ProductView `json:"product"`
	Quantity         int         `json:"quantity"`
	LineTotal        int64       `json:"line_total"`
	DisplayLineTotal string      `json:"display_line_total"`
}

// CartView is the cart drawer and cart endpoint payload.
type CartView struct {
	Lines           []CartLineView  `json:"lines"`
	ItemCount       int             `json:"item_count"`
	Subtotal        int64           `json:"subtotal"`
	DisplaySubtotal string          `json:"display_subtotal"`
	Currency        entity.Currency `json:"currency"`
}

// NewCartView derives the cart payload. Totals are recomputed on every call.
func NewCartView(cart *entity.Cart, currency entity.Currency) *CartView {
	lines := cart.Lines()
	view := &CartView{
		Lines:           make([]CartLineView, 0, len(lines)),
		ItemCount:       cart.ItemCount(),
		Subtotal:        cart.Subtotal(),
		DisplaySubtotal: currency.Format(cart.Subtotal()),
		Currency:        currency,
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, CartLineView{
			Product:          NewProductView(l.Product, currency),
			Quantity:         l.Quantity,
			LineTotal:        l.LineTotal(),
			DisplayLineTotal: currency.Format(l.LineTotal()),
		})
	}

	return view
}

// DisplayTotals are checkout totals formatted in the display currency.
type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// CheckoutView is the checkout page payload.
// EmptyBag replaces every step while the cart is empty and checkout is not complete.
type CheckoutView struct {
	Step          entity.CheckoutStep     `json:"step"`
	StepName      string                  `json:"step_name"`
	EmptyBag      bool                    `json:"empty_bag"`
	Shipping      *entity.ShippingDetails `json:"shipping,omitempty"`
	Reference     string                  `json:"reference,omitempty"`
	Cart          *CartView               `json:"cart"`
	Totals        entity.CheckoutTotals   `json:"totals"`
	DisplayTotals DisplayTotals           `json:"display_totals"`
}

// NewCheckoutView derives the checkout payload from the session state.
func NewCheckoutView(checkout entity.CheckoutSession, cart *entity.Cart, currency entity.Currency, shippingFee int64) *CheckoutView {
	totals := checkout.Totals(cart, shippingFee)

	return &CheckoutView{
		Step:      checkout.Step,
		StepName:  checkout.Step.String(),
		EmptyBag:  checkout.IsEmptyBag(cart),
		Shipping:  checkout.Shipping,
		Reference: checkout.Reference,
		Cart:      NewCartView(cart, currency),
		Totals:    totals,
		DisplayTotals: DisplayTotals{
			Subtotal: currency.Format(totals.Subtotal),
			Shipping: currency.Format(totals.Shipping),
			Total:    currency.Format(totals.Total),
		},
	}
}

// DashboardView is the partner dashboard payload.
type DashboardView struct {
	BusinessName      string        `json:"business_name"`
	Listings          []ProductView `json:"listings"`
	Count             int           `json:"count"`
	TotalValue        int64         `json:"total_value"`
	DisplayTotalValue string        `json:"display_total_value"`
}

// NewDashboardView derives the dashboard payload for the identity's listings.
func NewDashboardView(identity *entity.Identity, listings []entity.Product, currency entity.Currency) *DashboardView {
	var total int64
	for _, p := range listings {
		total += p.Price
	}

	return &DashboardView{
		BusinessName:      identity.SellerName(),
		Listings:          NewProductViews(listings, currency),
		Count:             len(listings),
		TotalValue:        total,
		DisplayTotalValue: currency.Format(total),
	}
}
