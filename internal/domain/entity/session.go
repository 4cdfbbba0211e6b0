package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the whole mutable state tree of one visitor.
type Session struct {
	ID        uuid.UUID       // Session identifier carried by the session token.
	Identity  *Identity       // Signed-in principal, nil for anonymous visitors.
	Cart      *Cart           // The visitor's cart. Never nil.
	View      ViewState       // Navigation state.
	Checkout  CheckoutSession // Current checkout attempt.
	CreatedAt time.Time       // Timestamp of when the session was created.
	UpdatedAt time.Time       // Timestamp of the last committed mutation.
}

// NewSession creates an anonymous session on the home page with an empty cart.
func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      NewCart(),
		View:      NewViewState(),
		Checkout:  NewCheckoutSession(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so a mutation can be discarded if it fails.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Cart = s.Cart.Clone()
	if s.Identity != nil {
		identity := *s.Identity
		clone.Identity = &identity
	}
	if s.Checkout.Shipping != nil {
		shipping := *s.Checkout.Shipping
		clone.Checkout.Shipping = &shipping
	}
	if s.Checkout.Paid != nil {
		paid := *s.Checkout.Paid
		clone.Checkout.Paid = &paid
	}

	return &clone
}
