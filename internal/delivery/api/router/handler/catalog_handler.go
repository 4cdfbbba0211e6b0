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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ListProductsRequest is the catalog query string.
type ListProductsRequest struct {
	Category string `query:"category" validate:"omitempty,category_filter"`
	Search   string `query:"q" validate:"max=200"`
}

// CategoriesResponse lists the shop filters and the home page tiles.
type CategoriesResponse struct {
	Categories []entity.Category         `json:"categories"`
	Showcase   []entity.CategoryShowcase `json:"showcase"`
	Currencies []entity.Currency         `json:"currencies"`
}

// Categories handles GET /catalog/categories
func (h *CatalogHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, CategoriesResponse{
		Categories: h.catalogUC.Categories(),
		Showcase:   h.catalogUC.Showcase(),
		Currencies: entity.Currencies(),
	})
}

// ListProducts handles GET /catalog/products with prices in the session's currency
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	currency, err := h.currency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		Category: entity.Category(req.Category),
		Search:   req.Search,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewProductViews(products, currency))
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	currency, err := h.currency(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewProductView(*product, currency))
}

func (h *CatalogHandler) currency(c echo.Context) (entity.Currency, error) {
	sid, err := sessionID(c)
	if err != nil {
		return "", err
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), sid)
	if err != nil {
		return "", err
	}

	return session.View.Currency, nil
}
