package impl

import (
	"context"
	"log/slog"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/repository"
	"vora/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo    repository.CatalogRepository
	homeHighlights int
	relatedLimit   int
	logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:    catalogRepo,
		homeHighlights: cfg.Storefront.HomeHighlights,
		relatedLimit:   cfg.Storefront.RelatedLimit,
		logger:         logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the products matching filter in catalog order.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	if filter.Category != "" && !filter.Category.IsFilter() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCategory, "category %q", filter.Category)
	}

	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := entity.FilterProducts(products, filter)
	srv.log(ctx).Debug("Listed products",
		slog.String("category", filter.Category.String()),
		slog.String("search", filter.Search),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// GetProduct retrieves one product.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, toAppError(err, "failed to find product")
	}

	return product, nil
}

// RelatedProducts returns up to the configured number of same-category products.
func (srv *catalogService) RelatedProducts(ctx context.Context, product entity.Product) ([]entity.Product, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.RelatedProducts(products, product, srv.relatedLimit), nil
}

// Highlights returns the first products of the catalog.
func (srv *catalogService) Highlights(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if len(products) > srv.homeHighlights {
		products = products[:srv.homeHighlights]
	}

	return products, nil
}

// Categories returns the filter tabs.
func (srv *catalogService) Categories() []entity.Category {
	return entity.Categories()
}

// Showcase returns the home page category tiles.
func (srv *catalogService) Showcase() []entity.CategoryShowcase {
	return entity.Showcase()
}
