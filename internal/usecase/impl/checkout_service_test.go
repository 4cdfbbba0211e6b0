package impl

import (
	"context"
	"testing"

	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	mockservice "vora/internal/mocks/service"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShipping = entity.ShippingDetails{
	FirstName: "James",
	LastName:  "Sterling",
	Address:   "123 Luxury Ave, Victoria Island",
}

type checkoutServiceFixtures struct {
	service    usecase.CheckoutUsecase
	references *mockservice.MockReferenceGenerator
	metrics    *mockservice.MockStorefrontMetrics
	stores     storeFixtures
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	stores := newStoreFixtures()
	references := mockservice.NewMockReferenceGenerator(t)
	metrics := mockservice.NewMockStorefrontMetrics(t)

	return checkoutServiceFixtures{
		service:    NewCheckoutService(stores.sessionRepo, references, metrics, newTestConfig(), newDiscardLogger()),
		references: references,
		metrics:    metrics,
		stores:     stores,
	}
}

// sessionWithCart creates a session holding one unit of each product.
func (fx checkoutServiceFixtures) sessionWithCart(t *testing.T, productIDs ...string) uuid.UUID {
	t.Helper()

	sid := fx.stores.newSession(t)
	fx.stores.mutate(t, sid, func(session *entity.Session) {
		for _, id := range productIDs {
			session.Cart.Add(fx.stores.product(t, id))
		}
	})

	return sid
}

func TestCheckoutService_FullFlow(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sid := fx.sessionWithCart(t, "w4")
	fx.stores.mutate(t, sid, func(session *entity.Session) {
		session.View = session.View.WithOverlay(entity.OverlayCart, true)
	})

	fx.references.On("Generate").Return("VORA-2025-Q1W2E3").Once()
	fx.metrics.On("RecordCheckoutCompleted", int64(4_215_000)).Once()

	view, err := fx.service.Begin(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, entity.StepShipping, view.Step)
	assert.False(t, view.EmptyBag)
	assert.Equal(t, int64(4_215_000), view.Totals.Total)
	assert.Equal(t, "₦15,000", view.DisplayTotals.Shipping)

	session := fx.stores.snapshot(t, sid)
	assert.Equal(t, entity.PageCheckout, session.View.Page)
	assert.False(t, session.View.CartDrawerOpen)

	view, err = fx.service.SubmitShipping(ctx, sid, testShipping)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, view.Step)

	view, err = fx.service.Pay(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, entity.StepComplete, view.Step)
	assert.Equal(t, "VORA-2025-Q1W2E3", view.Reference)
	assert.False(t, view.EmptyBag)
	assert.Equal(t, int64(4_215_000), view.Totals.Total)
	assert.Equal(t, "₦4,215,000", view.DisplayTotals.Total)
	assert.True(t, fx.stores.snapshot(t, sid).Cart.IsEmpty())

	view, err = fx.service.GetCheckout(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, entity.StepComplete, view.Step)
	assert.Equal(t, "VORA-2025-Q1W2E3", view.Reference)
	assert.Equal(t, int64(4_215_000), view.Totals.Total, "confirmation keeps the paid totals")
}

func TestCheckoutService_EmptyBag(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sid := fx.stores.newSession(t)

	view, err := fx.service.Begin(ctx, sid)
	require.NoError(t, err)
	assert.True(t, view.EmptyBag)

	_, err = fx.service.SubmitShipping(ctx, sid, testShipping)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyBag))
	assert.Equal(t, entity.StepShipping, fx.stores.snapshot(t, sid).Checkout.Step)
}

func TestCheckoutService_PayOutOfOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sid := fx.sessionWithCart(t, "j2")

	fx.references.On("Generate").Return("VORA-2025-AAAAAA").Maybe()

	_, err := fx.service.Pay(ctx, sid)

	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutStepInvalid))
	session := fx.stores.snapshot(t, sid)
	assert.Equal(t, entity.StepShipping, session.Checkout.Step)
	assert.Empty(t, session.Checkout.Reference)
	assert.False(t, session.Cart.IsEmpty())
	fx.metrics.AssertNotCalled(t, "RecordCheckoutCompleted", int64(3_515_000))
}

func TestCheckoutService_BackKeepsDetails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sid := fx.sessionWithCart(t, "m1")

	_, err := fx.service.Back(ctx, sid)
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutStepInvalid))

	_, err = fx.service.SubmitShipping(ctx, sid, testShipping)
	require.NoError(t, err)

	view, err := fx.service.Back(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, entity.StepShipping, view.Step)
	require.NotNil(t, view.Shipping)
	assert.Equal(t, testShipping, *view.Shipping)
}

func TestCheckoutService_IncompleteShipping(t *testing.T) {
	fx := createTestCheckoutService(t)
	sid := fx.sessionWithCart(t, "f1")
	details := testShipping
	details.LastName = ""

	_, err := fx.service.SubmitShipping(context.Background(), sid, details)

	assert.True(t, errors.Is(err, domainerrors.ErrShippingIncomplete))
	assert.Nil(t, fx.stores.snapshot(t, sid).Checkout.Shipping)
}

func TestCheckoutService_TotalsFollowDisplayCurrency(t *testing.T) {
	fx := createTestCheckoutService(t)
	sid := fx.sessionWithCart(t, "w1")
	fx.stores.mutate(t, sid, func(session *entity.Session) {
		session.View = session.View.WithCurrency(entity.CurrencyUSD)
	})

	view, err := fx.service.GetCheckout(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, "$7,812.50", view.DisplayTotals.Subtotal)
	assert.Equal(t, int64(12_515_000), view.Totals.Total)
}
