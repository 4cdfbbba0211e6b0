package entity

// Page is the logical page the storefront is displaying. Pages are mutually exclusive.
type Page string

const (
	PageHome          Page = "home"
	PageShop          Page = "shop"
	PageProductDetail Page = "product-detail"
	PageCheckout      Page = "checkout"
	PageTracking      Page = "tracking"
	PageDashboard     Page = "dashboard"
)

// String returns the string representation of the Page.
func (p Page) String() string {
	return string(p)
}

// IsValid checks if the Page is a known page tag.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageShop, PageProductDetail, PageCheckout, PageTracking, PageDashboard:
		return true
	default:
		return false
	}
}

// Overlay is a transient layer drawn above the current page.
type Overlay string

const (
	OverlayAuth Overlay = "auth"
	OverlayCart Overlay = "cart"
)

// IsValid checks if the Overlay is known.
func (o Overlay) IsValid() bool {
	return o == OverlayAuth || o == OverlayCart
}

// ViewState is the navigation state of one session.
// Every transition is a value method returning a new ViewState; the receiver is never modified.
type ViewState struct {
	Page              Page     `json:"page"`
	InspectedProduct  *Product `json:"inspected_product,omitempty"`
	TrackingReference string   `json:"tracking_reference,omitempty"`
	Category          Category `json:"category"`
	Search            string   `json:"search"`
	Currency          Currency `json:"currency"`
	AuthModalOpen     bool     `json:"auth_modal_open"`
	CartDrawerOpen    bool     `json:"cart_drawer_open"`

	// ScrollToTop asks the renderer to reset the viewport. Set by page transitions only.
	ScrollToTop bool `json:"scroll_to_top"`
}

// NewViewState returns the landing state: home page, no filters, base currency.
func NewViewState() ViewState {
	return ViewState{
		Page:     PageHome,
		Category: CategoryAll,
		Currency: BaseCurrency,
	}
}

// Navigate switches to page. The inspected product survives only when the target is
// product-detail and the tracking reference only when the target is tracking.
func (v ViewState) Navigate(page Page) ViewState {
	next := v
	next.Page = page
	next.ScrollToTop = true
	if page != PageProductDetail {
		next.InspectedProduct = nil
	}
	if page != PageTracking {
		next.TrackingReference = ""
	}

	return next.Normalize()
}

// ViewProduct opens the product-detail page for p.
func (v ViewState) ViewProduct(p Product) ViewState {
	next := v
	inspected := p
	next.Page = PageProductDetail
	next.InspectedProduct = &inspected
	next.TrackingReference = ""
	next.ScrollToTop = true

	return next
}

// TrackOrder opens the tracking page for reference.
func (v ViewState) TrackOrder(reference string) ViewState {
	next := v
	next.Page = PageTracking
	next.TrackingReference = reference
	next.InspectedProduct = nil
	next.ScrollToTop = true

	return next
}

// WithCategory sets the catalog category filter.
func (v ViewState) WithCategory(c Category) ViewState {
	next := v
	next.Category = c
	next.ScrollToTop = false

	return next
}

// WithSearch sets the free-text search.
func (v ViewState) WithSearch(text string) ViewState {
	next := v
	next.Search = text
	next.ScrollToTop = false

	return next
}

// WithCurrency sets the display currency.
func (v ViewState) WithCurrency(c Currency) ViewState {
	next := v
	next.Currency = c
	next.ScrollToTop = false

	return next
}

// WithOverlay opens or closes an overlay.
func (v ViewState) WithOverlay(o Overlay, open bool) ViewState {
	next := v
	next.ScrollToTop = false
	switch o {
	case OverlayAuth:
		next.AuthModalOpen = open
	case OverlayCart:
		next.CartDrawerOpen = open
	}

	return next
}

// Filter returns the catalog filter selected in this state.
func (v ViewState) Filter() ProductFilter {
	return ProductFilter{Category: v.Category, Search: v.Search}
}

// Normalize redirects states that cannot be rendered:
// product-detail without an inspected product falls back to the shop.
func (v ViewState) Normalize() ViewState {
	if v.Page == PageProductDetail && v.InspectedProduct == nil {
		next := v
		next.Page = PageShop
		return next
	}
	if !v.Page.IsValid() {
		next := v
		next.Page = PageHome
		return next
	}

	return v
}
