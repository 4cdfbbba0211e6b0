package handler

import (
	"log/slog"
	"net/http"

	"vora/internal/delivery/api/response"
	"vora/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler handles the session cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest adds one unit of a product.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest moves a line's quantity by a non-zero delta.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-1000,max=1000"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), sid, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity handles PATCH /cart/items/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateQuantityRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), sid, c.Param("id"), req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), sid, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.Clear(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
