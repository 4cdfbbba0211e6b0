// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vora/config"
	"vora/internal/delivery/api/middleware"
	"vora/internal/delivery/api/router/handler"
	"vora/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	ViewHandler         *handler.ViewHandler
	SessionHandler      *handler.SessionHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	TrackingHandler     *handler.TrackingHandler
	DashboardHandler    *handler.DashboardHandler
	SessionMiddleware   *middleware.SessionMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Gatherer            prometheus.Gatherer
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	viewHandler         *handler.ViewHandler
	sessionHandler      *handler.SessionHandler
	cartHandler         *handler.CartHandler
	checkoutHandler     *handler.CheckoutHandler
	trackingHandler     *handler.TrackingHandler
	dashboardHandler    *handler.DashboardHandler
	sessionMiddleware   *middleware.SessionMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		viewHandler:         params.ViewHandler,
		sessionHandler:      params.SessionHandler,
		cartHandler:         params.CartHandler,
		checkoutHandler:     params.CheckoutHandler,
		trackingHandler:     params.TrackingHandler,
		dashboardHandler:    params.DashboardHandler,
		sessionMiddleware:   params.SessionMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		gatherer:            params.Gatherer,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Every API call belongs to a visitor session
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Resolve)

	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.catalogHandler.Categories)
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	viewGroup := apiV1.Group("/view")
	{
		viewGroup.GET("", r.viewHandler.Project)
		viewGroup.POST("/navigate", r.viewHandler.Navigate)
		viewGroup.POST("/product", r.viewHandler.ViewProduct)
		viewGroup.POST("/track", r.viewHandler.TrackOrder)
		viewGroup.POST("/browse", r.viewHandler.BrowseCategory)
		viewGroup.PUT("/category", r.viewHandler.SetCategory)
		viewGroup.PUT("/search", r.viewHandler.SetSearch)
		viewGroup.PUT("/currency", r.viewHandler.SetCurrency)
		viewGroup.POST("/overlays/:overlay/open", r.viewHandler.OpenOverlay)
		viewGroup.POST("/overlays/:overlay/close", r.viewHandler.CloseOverlay)
	}

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/sign-in", r.sessionHandler.SignIn)
		sessionGroup.POST("/sign-out", r.sessionHandler.SignOut)
	}

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := apiV1.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Begin)
		checkoutGroup.GET("", r.checkoutHandler.GetCheckout)
		checkoutGroup.POST("/shipping", r.checkoutHandler.SubmitShipping)
		checkoutGroup.POST("/back", r.checkoutHandler.Back)
		checkoutGroup.POST("/pay", r.checkoutHandler.Pay)
	}

	trackingGroup := apiV1.Group("/tracking")
	{
		trackingGroup.GET("/:reference", r.trackingHandler.Lookup)
		trackingGroup.GET("/:reference/qr", r.trackingHandler.ReferenceQR)
	}

	// Business identity is enforced by the dashboard use cases
	dashboardGroup := apiV1.Group("/dashboard")
	{
		dashboardGroup.GET("/products", r.dashboardHandler.ListMine)
		dashboardGroup.POST("/products", r.dashboardHandler.AddListing)
		dashboardGroup.DELETE("/products/:id", r.dashboardHandler.RemoveListing)

		assistantGroup := dashboardGroup.Group("/assistant")
		assistantGroup.Use(r.rateLimitMiddleware.Limit)
		assistantGroup.POST("/description", r.dashboardHandler.DescribeProduct)
		assistantGroup.POST("/price", r.dashboardHandler.SuggestPrice)
	}
}
