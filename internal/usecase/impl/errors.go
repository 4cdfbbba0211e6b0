package impl

import (
	"context"

	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// toAppError translates repository and entity errors into domain errors and adds message context.
func toAppError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return errors.Wrap(domainerrors.ErrSessionNotFound, message)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, message)
	case errors.Is(err, entity.ErrEmptyBag):
		return errors.Wrap(domainerrors.ErrEmptyBag, message)
	case errors.Is(err, entity.ErrStepOutOfOrder):
		return errors.Wrap(domainerrors.ErrCheckoutStepInvalid.WithDetails(err.Error()), message)
	case errors.Is(err, entity.ErrShippingIncomplete):
		return errors.Wrap(domainerrors.ErrShippingIncomplete, message)
	default:
		return errors.Wrap(err, message)
	}
}

// authorizeBusiness is the guard in front of every dashboard entry point.
func authorizeBusiness(identity *entity.Identity) error {
	if !identity.IsBusiness() {
		return errors.Wrap(domainerrors.ErrDashboardAccessDenied, "business identity required")
	}

	return nil
}

// findBusinessSession loads the session and applies the business guard.
func findBusinessSession(ctx context.Context, sessionRepo repository.SessionRepository, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, toAppError(err, "failed to find session")
	}

	if err := authorizeBusiness(session.Identity); err != nil {
		return nil, err
	}

	return session, nil
}
