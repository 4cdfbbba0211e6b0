package handler

import (
	"log/slog"
	"net/http"

	"vora/internal/delivery/api/response"
	"vora/internal/domain/entity"
	"vora/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the partner dashboard and its copywriting assistant.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// AddListingRequest creates a listing. Price is in the base currency.
type AddListingRequest struct {
	Name                string `json:"name" validate:"required,max=120"`
	Description         string `json:"description" validate:"max=2000"`
	Price               int64  `json:"price" validate:"gte=0"`
	Category            string `json:"category" validate:"required,category"`
	ImageURL            string `json:"image_url" validate:"omitempty,url"`
	GenerateDescription bool   `json:"generate_description"`
	SuggestPrice        bool   `json:"suggest_price"`
}

// AssistantRequest names the product the copywriter works on.
type AssistantRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Category string `json:"category" validate:"required,category"`
}

// DescriptionResponse is generated marketing copy.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// PriceResponse is a suggested price in the base currency.
type PriceResponse struct {
	Price    float64         `json:"price"`
	Currency entity.Currency `json:"currency"`
}

// ListMine handles GET /dashboard/products
func (h *DashboardHandler) ListMine(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.dashboardUC.ListMine(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// AddListing handles POST /dashboard/products
func (h *DashboardHandler) AddListing(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddListingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.dashboardUC.AddListing(c.Request().Context(), sid, usecase.ListingInput{
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		Category:            entity.Category(req.Category),
		ImageURL:            req.ImageURL,
		GenerateDescription: req.GenerateDescription,
		SuggestPrice:        req.SuggestPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// RemoveListing handles DELETE /dashboard/products/:id
func (h *DashboardHandler) RemoveListing(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.dashboardUC.RemoveListing(c.Request().Context(), sid, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing removed"})
}

// DescribeProduct handles POST /dashboard/assistant/description
func (h *DashboardHandler) DescribeProduct(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssistantRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	description, err := h.assistantUC.DescribeProduct(c.Request().Context(), sid, req.Name, entity.Category(req.Category))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DescriptionResponse{Description: description})
}

// SuggestPrice handles POST /dashboard/assistant/price
func (h *DashboardHandler) SuggestPrice(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssistantRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	price, err := h.assistantUC.SuggestPrice(c.Request().Context(), sid, req.Name, entity.Category(req.Category))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PriceResponse{Price: price, Currency: entity.BaseCurrency})
}
