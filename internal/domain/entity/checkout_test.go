package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validShipping = ShippingDetails{FirstName: "James", LastName: "Sterling", Address: "123 Luxury Ave, Victoria Island"}

func filledCart() *Cart {
	cart := NewCart()
	cart.Add(testProduct("w4", 4_200_000))

	return cart
}

func TestCheckoutSession_HappyPath(t *testing.T) {
	cart := filledCart()
	session := NewCheckoutSession()

	session, err := session.SubmitShipping(cart, validShipping)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, session.Step)

	var completed string
	session, err = session.Pay(cart, "VORA-2025-Q1W2E3", DefaultShippingFee, func(ref string) {
		completed = ref
		cart.Clear()
	})
	require.NoError(t, err)

	assert.Equal(t, StepComplete, session.Step)
	assert.Equal(t, "VORA-2025-Q1W2E3", session.Reference)
	assert.Equal(t, "VORA-2025-Q1W2E3", completed)
	assert.True(t, cart.IsEmpty())
	assert.False(t, session.IsEmptyBag(cart), "complete step shows confirmation even with an empty cart")
	require.NotNil(t, session.Paid)
	assert.Equal(t, int64(4_215_000), session.Paid.Total)
	assert.Equal(t, int64(4_215_000), session.Totals(cart, DefaultShippingFee).Total, "confirmed totals survive the cleared cart")
}

func TestCheckoutSession_EmptyBagNeverProgresses(t *testing.T) {
	cart := NewCart()
	session := NewCheckoutSession()

	assert.True(t, session.IsEmptyBag(cart))

	next, err := session.SubmitShipping(cart, validShipping)
	assert.ErrorIs(t, err, ErrEmptyBag)
	assert.Equal(t, StepShipping, next.Step)

	paying := CheckoutSession{Step: StepPayment}
	next, err = paying.Pay(cart, "VORA-2025-AAAAAA", DefaultShippingFee, nil)
	assert.ErrorIs(t, err, ErrEmptyBag)
	assert.Equal(t, StepPayment, next.Step)
	assert.Empty(t, next.Reference)
	assert.Nil(t, next.Paid)
}

func TestCheckoutSession_BackKeepsShippingDetails(t *testing.T) {
	cart := filledCart()
	session, err := NewCheckoutSession().SubmitShipping(cart, validShipping)
	require.NoError(t, err)

	session, err = session.Back()
	require.NoError(t, err)

	assert.Equal(t, StepShipping, session.Step)
	require.NotNil(t, session.Shipping)
	assert.Equal(t, validShipping, *session.Shipping)
}

func TestCheckoutSession_OutOfOrder(t *testing.T) {
	cart := filledCart()

	_, err := NewCheckoutSession().Pay(cart, "X", DefaultShippingFee, nil)
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))

	_, err = NewCheckoutSession().Back()
	assert.True(t, errors.Is(err, ErrStepOutOfOrder))
}

func TestCheckoutSession_ShippingRequiresFields(t *testing.T) {
	cart := filledCart()
	details := validShipping
	details.Address = "   "

	session, err := NewCheckoutSession().SubmitShipping(cart, details)

	assert.ErrorIs(t, err, ErrShippingIncomplete)
	assert.Equal(t, StepShipping, session.Step)
}

func TestNewCheckoutTotals(t *testing.T) {
	totals := NewCheckoutTotals(850_000, DefaultShippingFee)

	assert.Equal(t, int64(865_000), totals.Total)
	assert.Equal(t, int64(15_000), totals.Shipping)
}
