package errors

import (
	"net/http"
	"testing"

	"vora/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrCheckoutStepInvalid.WithDetails("pay from shipping")
	wrapped := errors.Wrap(detailed, "failed to complete payment")

	assert.True(t, errors.Is(wrapped, ErrCheckoutStepInvalid))
	assert.False(t, errors.Is(wrapped, ErrEmptyBag))
	assert.Equal(t, "pay from shipping", detailed.Details())
	assert.Empty(t, ErrCheckoutStepInvalid.Details(), "the predefined error is not mutated")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "CHECKOUT_STEP_INVALID", appErr.ErrorCode())
}

func TestBaseError_IsIgnoresOtherErrors(t *testing.T) {
	assert.False(t, ErrProductNotFound.Is(errors.New("PRODUCT_NOT_FOUND")))
	assert.True(t, ErrProductNotFound.Is(NewBaseError(http.StatusTeapot, "PRODUCT_NOT_FOUND", "", "")))
}
