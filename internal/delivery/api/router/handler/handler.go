// Package handler holds the echo handlers of the storefront API.
package handler

import (
	"net/http"

	"vora/internal/delivery/api/middleware"
	"vora/internal/delivery/api/response"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionID returns the session resolved by the session middleware.
func sessionID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrSessionNotFound, "no session resolved for request")
	}

	return id, nil
}

// bind decodes and validates the request into req.
// Failures are returned as ErrValidationFailed for response.HandleAppError.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid request")
	}

	return nil
}
