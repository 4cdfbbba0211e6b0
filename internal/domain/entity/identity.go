package entity

// AccountType tags the kind of signed-in identity.
type AccountType string

const (
	// AccountPersonal is a shopper account.
	AccountPersonal AccountType = "USER"
	// AccountBusiness is a seller account with dashboard access.
	AccountBusiness AccountType = "BUSINESS"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountPersonal, AccountBusiness:
		return true
	default:
		return false
	}
}

// DefaultDisplayName is used when a visitor signs in without a name.
const DefaultDisplayName = "John Doe"

// Identity is the signed-in session principal. An anonymous visitor has a nil *Identity.
type Identity struct {
	ID               string      `json:"id"`
	Email            string      `json:"email"`
	Name             string      `json:"name"`
	Type             AccountType `json:"type"`
	BusinessName     string      `json:"business_name,omitempty"`
	BusinessCategory string      `json:"business_category,omitempty"`
}

// IsBusiness reports whether the identity is present and of kind Business.
func (i *Identity) IsBusiness() bool {
	return i != nil && i.Type == AccountBusiness
}

// SellerName is the name shown on listings created by this identity.
func (i *Identity) SellerName() string {
	if i.BusinessName != "" {
		return i.BusinessName
	}

	return i.Name
}

// Owns reports whether p was listed by this identity.
func (i *Identity) Owns(p Product) bool {
	return i != nil && p.SellerID == i.ID
}
