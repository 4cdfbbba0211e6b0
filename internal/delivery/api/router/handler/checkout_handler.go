package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vora/internal/delivery/api/response"
	"vora/internal/domain/entity"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the three-step checkout.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// ShippingRequest is the shipping form. Presence of each field is checked by the checkout itself.
type ShippingRequest struct {
	FirstName string `json:"first_name" validate:"max=120"`
	LastName  string `json:"last_name" validate:"max=120"`
	Address   string `json:"address" validate:"max=500"`
}

// Begin handles POST /checkout
func (h *CheckoutHandler) Begin(c echo.Context) error {
	return h.step(c, h.checkoutUC.Begin)
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	return h.step(c, h.checkoutUC.GetCheckout)
}

// SubmitShipping handles POST /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	var req ShippingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.step(c, func(ctx context.Context, sid uuid.UUID) (*usecase.CheckoutView, error) {
		return h.checkoutUC.SubmitShipping(ctx, sid, entity.ShippingDetails{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
		})
	})
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c echo.Context) error {
	return h.step(c, h.checkoutUC.Back)
}

// Pay handles POST /checkout/pay
func (h *CheckoutHandler) Pay(c echo.Context) error {
	return h.step(c, h.checkoutUC.Pay)
}

func (h *CheckoutHandler) step(c echo.Context, fn func(ctx context.Context, sid uuid.UUID) (*usecase.CheckoutView, error)) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := fn(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
