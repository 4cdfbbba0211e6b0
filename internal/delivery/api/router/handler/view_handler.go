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

// ViewHandlerParams holds dependencies for ViewHandler, injected by Fx.
type ViewHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	StorefrontUC usecase.StorefrontUsecase
	Logger       *slog.Logger
}

// ViewHandler exposes the navigation state machine and the page projection.
type ViewHandler struct {
	navigationUC usecase.NavigationUsecase
	storefrontUC usecase.StorefrontUsecase
	logger       *slog.Logger
}

// NewViewHandler is the constructor for ViewHandler
func NewViewHandler(params ViewHandlerParams) *ViewHandler {
	return &ViewHandler{
		navigationUC: params.NavigationUC,
		storefrontUC: params.StorefrontUC,
		logger:       params.Logger,
	}
}

// NavigateRequest selects a page.
type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

// ViewProductRequest opens a product detail page.
type ViewProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// TrackOrderRequest opens the tracking page.
type TrackOrderRequest struct {
	Reference string `json:"reference" validate:"required,max=64"`
}

// CategoryRequest selects a category filter.
type CategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// SearchRequest sets the free-text search. An empty query clears it.
type SearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// CurrencyRequest selects the display currency.
type CurrencyRequest struct {
	Currency string `json:"currency" validate:"required"`
}

// Project handles GET /view
func (h *ViewHandler) Project(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.storefrontUC.Project(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Navigate handles POST /view/navigate
func (h *ViewHandler) Navigate(c echo.Context) error {
	var req NavigateRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.Navigate(ctx, sid, entity.Page(req.Page))
	})
}

// ViewProduct handles POST /view/product
func (h *ViewHandler) ViewProduct(c echo.Context) error {
	var req ViewProductRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.ViewProduct(ctx, sid, req.ProductID)
	})
}

// TrackOrder handles POST /view/track
func (h *ViewHandler) TrackOrder(c echo.Context) error {
	var req TrackOrderRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.TrackOrder(ctx, sid, req.Reference)
	})
}

// BrowseCategory handles POST /view/browse
func (h *ViewHandler) BrowseCategory(c echo.Context) error {
	var req CategoryRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.BrowseCategory(ctx, sid, entity.Category(req.Category))
	})
}

// SetCategory handles PUT /view/category
func (h *ViewHandler) SetCategory(c echo.Context) error {
	var req CategoryRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.SetCategory(ctx, sid, entity.Category(req.Category))
	})
}

// SetSearch handles PUT /view/search
func (h *ViewHandler) SetSearch(c echo.Context) error {
	var req SearchRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.SetSearch(ctx, sid, req.Query)
	})
}

// SetCurrency handles PUT /view/currency
func (h *ViewHandler) SetCurrency(c echo.Context) error {
	var req CurrencyRequest

	return h.transition(c, &req, func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error) {
		return h.navigationUC.SetCurrency(ctx, sid, entity.Currency(req.Currency))
	})
}

// OpenOverlay handles POST /view/overlays/:overlay/open
func (h *ViewHandler) OpenOverlay(c echo.Context) error {
	return h.setOverlay(c, true)
}

// CloseOverlay handles POST /view/overlays/:overlay/close
func (h *ViewHandler) CloseOverlay(c echo.Context) error {
	return h.setOverlay(c, false)
}

func (h *ViewHandler) setOverlay(c echo.Context, open bool) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.navigationUC.SetOverlay(c.Request().Context(), sid, entity.Overlay(c.Param("overlay")), open)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// transition binds req, then applies fn for the resolved session.
func (h *ViewHandler) transition(c echo.Context, req any, fn func(ctx context.Context, sid uuid.UUID) (*entity.ViewState, error)) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := bind(c, req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := fn(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
