package usecase

import (
	"context"

	"vora/internal/domain/entity"
)

// TrackingUsecase answers order tracking lookups.
type TrackingUsecase interface {
	// Lookup returns the fulfilment timeline after the configured delay.
	Lookup(ctx context.Context, reference string) (*entity.TrackingResult, error)

	// ReferenceQR renders the reference as a PNG QR code.
	ReferenceQR(ctx context.Context, reference string) ([]byte, error)
}
