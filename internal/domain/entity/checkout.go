package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// CheckoutStep is the position in the linear checkout flow.
type CheckoutStep int

const (
	StepShipping CheckoutStep = 1
	StepPayment  CheckoutStep = 2
	StepComplete CheckoutStep = 3
)

// DefaultShippingFee is the flat shipping fee in the base currency.
const DefaultShippingFee int64 = 15000

// String returns a readable name for the step.
func (s CheckoutStep) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Checkout transition errors.
var (
	// ErrEmptyBag is returned when a step is attempted with no cart lines.
	ErrEmptyBag = errors.New("checkout requires a non-empty bag")
	// ErrStepOutOfOrder is returned when a transition does not start from its source step.
	ErrStepOutOfOrder = errors.New("checkout step out of order")
	// ErrShippingIncomplete is returned when a required shipping field is blank.
	ErrShippingIncomplete = errors.New("shipping details incomplete")
)

// ShippingDetails are the fields collected on the shipping step.
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

// Validate checks required-field presence. No other validation is applied.
func (d ShippingDetails) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" ||
		strings.TrimSpace(d.LastName) == "" ||
		strings.TrimSpace(d.Address) == "" {
		return ErrShippingIncomplete
	}

	return nil
}

// CheckoutSession is one checkout attempt.
// Transitions are value methods; a failed transition leaves the session unchanged.
type CheckoutSession struct {
	Step      CheckoutStep     `json:"step"`
	Shipping  *ShippingDetails `json:"shipping,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Paid      *CheckoutTotals  `json:"paid,omitempty"` // Totals captured at payment, before the cart is cleared.
}

// NewCheckoutSession starts a checkout at the shipping step.
func NewCheckoutSession() CheckoutSession {
	return CheckoutSession{Step: StepShipping}
}

// IsEmptyBag reports whether the empty-bag fallback must be shown instead of a step.
func (s CheckoutSession) IsEmptyBag(cart *Cart) bool {
	return s.Step != StepComplete && (cart == nil || cart.IsEmpty())
}

// SubmitShipping moves Shipping → Payment.
func (s CheckoutSession) SubmitShipping(cart *Cart, details ShippingDetails) (CheckoutSession, error) {
	if s.IsEmptyBag(cart) {
		return s, ErrEmptyBag
	}
	if s.Step != StepShipping {
		return s, errors.Wrapf(ErrStepOutOfOrder, "submit shipping from %s", s.Step)
	}
	if err := details.Validate(); err != nil {
		return s, err
	}

	next := s
	next.Step = StepPayment
	next.Shipping = &details

	return next, nil
}

// Back moves Payment → Shipping, keeping the submitted details.
func (s CheckoutSession) Back() (CheckoutSession, error) {
	if s.Step != StepPayment {
		return s, errors.Wrapf(ErrStepOutOfOrder, "back from %s", s.Step)
	}

	next := s
	next.Step = StepShipping

	return next, nil
}

// Pay moves Payment → Complete, storing reference and the paid totals, then invokes onComplete with the reference.
func (s CheckoutSession) Pay(cart *Cart, reference string, shippingFee int64, onComplete func(reference string)) (CheckoutSession, error) {
	if s.IsEmptyBag(cart) {
		return s, ErrEmptyBag
	}
	if s.Step != StepPayment {
		return s, errors.Wrapf(ErrStepOutOfOrder, "pay from %s", s.Step)
	}

	next := s
	next.Step = StepComplete
	next.Reference = reference
	paid := NewCheckoutTotals(cart.Subtotal(), shippingFee)
	next.Paid = &paid
	if onComplete != nil {
		onComplete(reference)
	}

	return next, nil
}

// CheckoutTotals is the order summary in the base currency.
type CheckoutTotals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Totals returns the paid totals once complete, otherwise the live totals of cart.
func (s CheckoutSession) Totals(cart *Cart, shippingFee int64) CheckoutTotals {
	if s.Step == StepComplete && s.Paid != nil {
		return *s.Paid
	}

	var subtotal int64
	if cart != nil {
		subtotal = cart.Subtotal()
	}

	return NewCheckoutTotals(subtotal, shippingFee)
}

// NewCheckoutTotals adds the flat shipping fee to subtotal.
func NewCheckoutTotals(subtotal, shippingFee int64) CheckoutTotals {
	return CheckoutTotals{
		Subtotal: subtotal,
		Shipping: shippingFee,
		Total:    subtotal + shippingFee,
	}
}
