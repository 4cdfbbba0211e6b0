package impl

import (
	"context"
	"log/slog"
	"time"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/service"
	"vora/internal/usecase"

	"github.com/pkg/errors"
)

// trackingService implements the TrackingUsecase interface.
// The timeline is simulated and never correlated with a real order.
type trackingService struct {
	qrService service.QRCodeService
	metrics   service.StorefrontMetrics
	delay     time.Duration
	logger    *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(
	qrService service.QRCodeService,
	metrics service.StorefrontMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		qrService: qrService,
		metrics:   metrics,
		delay:     cfg.Storefront.TrackingDelay,
		logger:    logger,
	}
}

func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Lookup waits for the artificial delay and returns the canned timeline.
// A cancelled context abandons the lookup and no result is produced.
func (srv *trackingService) Lookup(ctx context.Context, reference string) (*entity.TrackingResult, error) {
	reference = normalizeReference(reference)
	if reference == "" {
		return nil, errors.WithStack(domainerrors.ErrTrackingReferenceRequired)
	}

	timer := time.NewTimer(srv.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		srv.log(ctx).Debug("Tracking lookup abandoned", slog.String("reference", reference))
		return nil, errors.WithStack(ctx.Err())
	case <-timer.C:
	}

	result := entity.SimulatedTracking(reference)
	srv.metrics.RecordTrackingLookup()

	return &result, nil
}

// ReferenceQR renders the normalised reference as a PNG QR code.
func (srv *trackingService) ReferenceQR(ctx context.Context, reference string) ([]byte, error) {
	reference = normalizeReference(reference)
	if reference == "" {
		return nil, errors.WithStack(domainerrors.ErrTrackingReferenceRequired)
	}

	png, err := srv.qrService.GenerateReferenceQR(reference)
	if err != nil {
		srv.log(ctx).Error("Failed to render reference QR", slog.Any("error", err), slog.String("reference", reference))
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render reference QR")
	}

	return png, nil
}
