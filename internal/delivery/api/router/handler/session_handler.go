package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vora/internal/delivery/api/response"
	"vora/internal/domain/entity"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler handles the visitor session and the simulated sign-in.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest is the sign-in form. Nothing is verified.
type SignInRequest struct {
	Email            string `json:"email" validate:"max=254"`
	Name             string `json:"name" validate:"max=120"`
	AccountType      string `json:"account_type" validate:"account_type"`
	BusinessName     string `json:"business_name" validate:"max=120"`
	BusinessCategory string `json:"business_category" validate:"max=120"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Identity  *entity.Identity `json:"identity"`
	CartCount int              `json:"cart_count"`
	Currency  entity.Currency  `json:"currency"`
	CreatedAt time.Time        `json:"created_at"`
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		ID:        session.ID,
		Identity:  session.Identity,
		CartCount: session.Cart.ItemCount(),
		Currency:  session.View.Currency,
		CreatedAt: session.CreatedAt,
	})
}

// SignIn handles POST /session/sign-in
func (h *SessionHandler) SignIn(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SignInRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	identity, err := h.sessionUC.SignIn(c.Request().Context(), sid, usecase.SignInInput{
		Email:            req.Email,
		Name:             req.Name,
		AccountType:      entity.AccountType(req.AccountType),
		BusinessName:     req.BusinessName,
		BusinessCategory: req.BusinessCategory,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identity)
}

// SignOut handles POST /session/sign-out
func (h *SessionHandler) SignOut(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.SignOut(c.Request().Context(), sid); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}
