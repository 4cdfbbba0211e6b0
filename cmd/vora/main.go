package main

import (
	"context"
	"log/slog"
	"os"

	"vora/config"
	"vora/internal/delivery"
	"vora/internal/delivery/api"
	"vora/internal/delivery/api/middleware"
	"vora/internal/delivery/api/router/handler"
	"vora/internal/delivery/worker"
	"vora/internal/domain/repository"
	"vora/internal/domain/service"
	"vora/internal/infra/ai/gemini"
	"vora/internal/infra/auth"
	logs "vora/internal/infra/log"
	"vora/internal/infra/metrics"
	"vora/internal/infra/persistence/memory"
	"vora/internal/infra/qrcode"
	"vora/internal/infra/reference"
	"vora/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newRegistry,
		metrics.NewCollector,
		func(c *metrics.Collector) service.StorefrontMetrics { return c },
	)
}

// newRegistry exposes one registry as both the registerer for collectors and the gatherer for the endpoint.
func newRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()

	return reg, reg
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewSessionRepository,
			newCatalogRepository,
		),
	)
}

func newCatalogRepository() repository.CatalogRepository {
	return memory.NewCatalogRepository(memory.SeedProducts())
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			reference.NewGenerator,
			gemini.NewCopywriter,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewNavigationService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewTrackingService,
			impl.NewDashboardService,
			impl.NewAssistantService,
			impl.NewStorefrontService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewViewHandler,
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewTrackingHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSessionJanitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
