package handler

import (
	"log/slog"
	"net/http"

	"vora/internal/delivery/api/response"
	"vora/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves the simulated order timeline.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// Lookup handles GET /tracking/:reference. A client disconnect cancels the lookup.
func (h *TrackingHandler) Lookup(c echo.Context) error {
	result, err := h.trackingUC.Lookup(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ReferenceQR handles GET /tracking/:reference/qr
func (h *TrackingHandler) ReferenceQR(c echo.Context) error {
	png, err := h.trackingUC.ReferenceQR(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
