package impl

import (
	"context"
	"log/slog"
	"math"
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

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
	copywriter  service.Copywriter
	logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	sessionRepo repository.SessionRepository,
	catalogRepo repository.CatalogRepository,
	copywriter service.Copywriter,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		copywriter:  copywriter,
		logger:      logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMine returns the signed-in business's listings and their total value.
func (srv *dashboardService) ListMine(ctx context.Context, sessionID uuid.UUID) (*usecase.DashboardView, error) {
	session, err := srv.business(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	listings, err := srv.catalogRepo.FindBySeller(ctx, session.Identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return usecase.NewDashboardView(session.Identity, listings, session.View.Currency), nil
}

// AddListing appends a product owned by the signed-in business.
// The copywriter is only consulted when the input asks for it.
func (srv *dashboardService) AddListing(ctx context.Context, sessionID uuid.UUID, input usecase.ListingInput) (*usecase.ProductView, error) {
	session, err := srv.business(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !input.Category.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCategory, "category %q", input.Category)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "invalid listing")
	}

	description := strings.TrimSpace(input.Description)
	if input.GenerateDescription {
		description = srv.copywriter.GenerateDescription(ctx, name, input.Category.String())
	}

	price := input.Price
	if input.SuggestPrice {
		price = int64(math.Round(srv.copywriter.SuggestPrice(ctx, name, input.Category.String())))
	}
	if price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price must be positive"), "invalid listing")
	}

	product := entity.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    input.Category,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SellerID:    session.Identity.ID,
		SellerName:  session.Identity.SellerName(),
	}

	if err := srv.catalogRepo.Add(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to add listing")
	}

	srv.log(ctx).Info("Listing added",
		slog.String("product_id", product.ID),
		slog.String("seller_id", product.SellerID),
		slog.Int64("price", product.Price),
	)

	view := usecase.NewProductView(product, session.View.Currency)

	return &view, nil
}

// RemoveListing deletes one of the business's own products.
func (srv *dashboardService) RemoveListing(ctx context.Context, sessionID uuid.UUID, productID string) error {
	session, err := srv.business(ctx, sessionID)
	if err != nil {
		return err
	}

	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return toAppError(err, "failed to find listing")
	}
	if !session.Identity.Owns(*product) {
		return errors.Wrapf(domainerrors.ErrListingOwnershipViolation, "product %s", productID)
	}

	if err := srv.catalogRepo.Remove(ctx, productID); err != nil {
		return toAppError(err, "failed to remove listing")
	}

	srv.log(ctx).Info("Listing removed",
		slog.String("product_id", productID),
		slog.String("seller_id", session.Identity.ID),
	)

	return nil
}

func (srv *dashboardService) business(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return findBusinessSession(ctx, srv.sessionRepo, sessionID)
}
