// Command farmhub serves the farm management REST API.
//
//	@title						Farm Management API
//	@version					0.1.0
//	@description				Manage farms, animals, vaccinations, breeding and food stock.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"log/slog"
	"os"

	"farmhub/config"
	"farmhub/internal/delivery"
	"farmhub/internal/delivery/http"
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/router/handler"
	deliverymiddleware "farmhub/internal/delivery/middleware"
	"farmhub/internal/infra/auth"
	logs "farmhub/internal/infra/log"
	"farmhub/internal/infra/persistence/postgres"
	"farmhub/internal/infra/pubsub"
	"farmhub/internal/infra/qrcode"
	"farmhub/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const metricsNamespace = "farmhub"

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
			registerDBMetrics,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewFarmRepository,
			postgres.NewFoodStockRepository,
			postgres.NewAnimalRepository,
			postgres.NewVaccineRepository,
			postgres.NewBreedingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRefreshTokenLedger,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewFarmService,
			impl.NewAnimalService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			newMetricsMiddleware,
		),
	)
}

// newMetricsMiddleware returns nil when metrics are disabled; consumers take it as optional.
func newMetricsMiddleware(cfg *config.Config, logger *slog.Logger) (*deliverymiddleware.MetricsMiddleware, error) {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		logger.Info("Metrics disabled")

		return nil, nil //nolint:nilnil
	}

	metrics, err := deliverymiddleware.NewMetricsMiddleware(metricsNamespace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create metrics middleware")
	}

	return metrics, nil
}

type dbMetricsParams struct {
	fx.In

	DB      *gorm.DB
	Metrics *deliverymiddleware.MetricsMiddleware `optional:"true"`
}

// registerDBMetrics exports the connection pool stats next to the HTTP metrics.
func registerDBMetrics(params dbMetricsParams) error {
	if params.Metrics == nil {
		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, "farmhub"))
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewFarmHandler,
			handler.NewAnimalHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
