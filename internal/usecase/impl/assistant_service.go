package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/repository"
	"vora/internal/domain/service"
	"vora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	sessionRepo repository.SessionRepository
	copywriter  service.Copywriter
	logger      *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(
	sessionRepo repository.SessionRepository,
	copywriter service.Copywriter,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	return &assistantService{
		sessionRepo: sessionRepo,
		copywriter:  copywriter,
		logger:      logger,
	}
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DescribeProduct asks the copywriter for marketing copy.
func (srv *assistantService) DescribeProduct(ctx context.Context, sessionID uuid.UUID, name string, category entity.Category) (string, error) {
	if err := srv.authorize(ctx, sessionID, category); err != nil {
		return "", err
	}

	description := srv.copywriter.GenerateDescription(ctx, strings.TrimSpace(name), category.String())
	srv.log(ctx).Debug("Generated listing description", slog.String("category", category.String()))

	return description, nil
}

// SuggestPrice asks the copywriter for a price in the base currency.
func (srv *assistantService) SuggestPrice(ctx context.Context, sessionID uuid.UUID, name string, category entity.Category) (float64, error) {
	if err := srv.authorize(ctx, sessionID, category); err != nil {
		return 0, err
	}

	price := srv.copywriter.SuggestPrice(ctx, strings.TrimSpace(name), category.String())
	srv.log(ctx).Debug("Suggested listing price", slog.String("category", category.String()), slog.Float64("price", price))

	return price, nil
}

func (srv *assistantService) authorize(ctx context.Context, sessionID uuid.UUID, category entity.Category) error {
	if _, err := findBusinessSession(ctx, srv.sessionRepo, sessionID); err != nil {
		return err
	}
	if !category.IsValid() {
		return errors.Wrapf(domainerrors.ErrInvalidCategory, "category %q", category)
	}

	return nil
}
